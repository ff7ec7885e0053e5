package bookkeep_test

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/simaogato/bookkeep"
	"github.com/simaogato/bookkeep/numeric"
)

func ExampleBook() {
	book := bookkeep.New[string, string, string, string]("household ledger", numeric.Decimal())

	bank := book.NewAccount("bank")
	wallet := book.NewAccount("wallet")
	usd := book.NewUnit("USD")

	if err := book.InsertTransaction(0, "cash withdrawal"); err != nil {
		log.Fatal(err)
	}
	if err := book.InsertMove(0, 0, bank, wallet, bookkeep.SumOf(usd, decimal.NewFromInt(500)), "atm"); err != nil {
		log.Fatal(err)
	}

	balance, err := book.AccountBalanceAtTransaction(wallet, 0)
	if err != nil {
		log.Fatal(err)
	}

	amount, _ := balance.UnitAmount(usd)
	fmt.Printf("wallet holds %s USD\n", amount)
	// Output: wallet holds 500 USD
}

func ExampleBook_AccountRunningBalance() {
	book := bookkeep.New[string, string, string, string]("savings plan", numeric.Decimal())

	income := book.NewAccount("income")
	savings := book.NewAccount("savings")
	eur := book.NewUnit("EUR")

	for i, amount := range []int64{300, 300, 250} {
		if err := book.InsertTransaction(i, fmt.Sprintf("month %d", i+1)); err != nil {
			log.Fatal(err)
		}
		if err := book.InsertMove(i, 0, income, savings, bookkeep.SumOf(eur, decimal.NewFromInt(amount)), "deposit"); err != nil {
			log.Fatal(err)
		}
	}

	running, err := book.AccountRunningBalance(savings)
	if err != nil {
		log.Fatal(err)
	}
	for i, balance := range running {
		amount, _ := balance.UnitAmount(eur)
		fmt.Printf("after month %d: %s EUR\n", i+1, amount)
	}
	// Output:
	// after month 1: 300 EUR
	// after month 2: 600 EUR
	// after month 3: 850 EUR
}
