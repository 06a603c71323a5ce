package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fincalc/domain"
	"fincalc/i18n"
	"fincalc/report"
	"fincalc/service"
)

var loanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Print a loan repayment plan",
}

var loanInstallmentCmd = &cobra.Command{
	Use:   "equal-installment",
	Short: "Equal-installment (annuity) repayment plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoan(cmd, domain.EqualInstallment)
	},
}

var loanPrincipalCmd = &cobra.Command{
	Use:   "equal-principal",
	Short: "Equal-principal repayment plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoan(cmd, domain.EqualPrincipal)
	},
}

var fundCmd = &cobra.Command{
	Use:   "fund",
	Short: "Print money-market fund yield projections",
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, _ := cmd.Flags().GetString("amount")
		term, _ := cmd.Flags().GetString("term")
		rate, _ := cmd.Flags().GetString("rate")

		tr, err := translator()
		if err != nil {
			return err
		}

		result, err := service.NewFundService(nil, 0).ProjectForm(domain.FundForm{
			Amount: amount,
			Term:   term,
			Rate:   rate,
		})
		if err != nil {
			return userError(tr, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), report.FundYield(tr, result, cfg.Report.Decimals))
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{loanInstallmentCmd, loanPrincipalCmd} {
		c.Flags().String("amount", "", "loan principal")
		c.Flags().String("periods", "", "number of periods")
		c.Flags().String("rate", "", "interest rate per period, e.g. 0.005")
		loanCmd.AddCommand(c)
	}

	fundCmd.Flags().String("amount", "", "total amount invested")
	fundCmd.Flags().String("term", "", "number of periods")
	fundCmd.Flags().String("rate", "", "annual rate, e.g. 0.03")
}

func runLoan(cmd *cobra.Command, method domain.RepaymentMethod) error {
	amount, _ := cmd.Flags().GetString("amount")
	periods, _ := cmd.Flags().GetString("periods")
	rate, _ := cmd.Flags().GetString("rate")

	tr, err := translator()
	if err != nil {
		return err
	}

	summary, err := service.NewLoanService(nil, 0).CalculateLoanForm(method, domain.LoanForm{
		Amount:  amount,
		Periods: periods,
		Rate:    rate,
	})
	if err != nil {
		return userError(tr, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.LoanPlan(tr, summary, cfg.Report.Decimals))
	return nil
}

// userError replaces a validation failure with the localized prompt.
func userError(tr *i18n.Translator, err error) error {
	if errors.Is(err, service.ErrInvalidInput) {
		return errors.New(tr.T("invalid_input", nil))
	}
	return err
}
