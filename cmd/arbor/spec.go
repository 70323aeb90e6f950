package main

import (
	"context"
	"errors"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/dsl"
	"github.com/aretw0/arbor/pkg/suite"
)

var errInsufficientFunds = errors.New("insufficient funds")

type account struct {
	Owner   string `mapstructure:"owner"`
	Balance int    `mapstructure:"balance"`
	history []string
}

func (a *account) withdraw(amount int) error {
	if amount > a.Balance {
		return errInsufficientFunds
	}
	a.Balance -= amount
	a.history = append(a.history, "withdraw")
	return nil
}

// ledger is a stand-in for a slow external dependency.
type ledger struct {
	open    bool
	entries int
}

func (l *ledger) connect(ctx context.Context) error {
	select {
	case <-time.After(time.Millisecond):
		l.open = true
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func bankSpec() *domain.Context {
	var (
		acct *account
		lg   ledger
		err  error
	)

	return dsl.Describe("bank account", func(b *dsl.Builder) {
		b.BeforeAllAsync(func(ctx context.Context) error {
			return lg.connect(ctx)
		})
		b.BeforeAllInstance(func(inst domain.Instance) {
			suite.Of(inst).Set("fixture", map[string]any{"owner": "ada", "balance": "100"})
		})
		b.BeforeInstance(func(inst domain.Instance) {
			acct = &account{}
			if err := suite.Of(inst).Decode("fixture", acct); err != nil {
				panic(err)
			}
		})
		b.AfterAsync(func(context.Context) error {
			lg.entries += len(acct.history)
			return nil
		})
		b.AfterAllInstance(func(inst domain.Instance) {
			suite.Of(inst).Set("entries", lg.entries)
		})

		b.It("opens with the fixture balance", func() {
			require.Equal(&suite.Asserter{}, 100, acct.Balance)
		}, domain.WithTags("fast"))

		b.Context("withdrawing_within_the_balance", func(b *dsl.Builder) {
			b.Act(func() { err = acct.withdraw(30) })

			b.It("succeeds", func() {
				if err != nil {
					panic(err)
				}
			}, domain.WithTags("fast"))
			b.It("reduces the balance", func() {
				if acct.Balance != 70 {
					panic(errors.New("balance not reduced"))
				}
			})
		})

		b.Context("withdrawing more than the balance", func(b *dsl.Builder) {
			b.ActInstanceAsync(func(_ context.Context, _ domain.Instance) error {
				err = acct.withdraw(500)
				return nil
			})

			b.It("is rejected", func() {
				if !errors.Is(err, errInsufficientFunds) {
					panic("expected insufficient funds")
				}
			}, domain.WithTags("fast"))
			b.ItAsync("leaves the ledger untouched", func(ctx context.Context) error {
				if len(acct.history) != 0 {
					return errors.New("history was written")
				}
				return ctx.Err()
			}, domain.WithTags("slow"))
		})

		b.XContext("overdraft", func(b *dsl.Builder) {
			b.It("charges a fee", func() {})
		})

		b.Context("statements", func(b *dsl.Builder) {
			b.AfterAll(func() { lg.open = false })
			b.XIt("are exported as PDF", nil)
			b.It("require an open ledger", func() {
				if !lg.open {
					panic("ledger closed")
				}
			}, domain.WithTags("slow"))
		})
	})
}
