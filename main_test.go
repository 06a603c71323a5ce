package main

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("FINCALC_REPORT_LOCALE", "en")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestLoanCommand(t *testing.T) {

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "equal installment",
			args: []string{"loan", "equal-installment", "--amount", "1000", "--periods", "2", "--rate", "0.1"},
			want: []string{"Total payment: 1152.3810", "Total interest: 152.3810"},
		},
		{
			name: "equal principal",
			args: []string{"loan", "equal-principal", "--amount", "1000", "--periods", "2", "--rate", "0.1"},
			want: []string{"Total payment: 1150.0000", "Total interest: 150.0000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, out)
				}
			}
		})
	}
}

func TestLoanCommand_InvalidInput(t *testing.T) {

	_, err := execute(t, "loan", "equal-installment", "--amount", "abc", "--periods", "2", "--rate", "0.1")
	if err == nil {
		t.Fatal("expected error for non numeric amount")
	}
	if err.Error() != "Please enter valid input" {
		t.Errorf("unexpected error message %q", err.Error())
	}
}

func TestFundCommand(t *testing.T) {

	out, err := execute(t, "fund", "--amount", "10000", "--term", "7", "--rate", "0.03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"Seven-day annualized return (%): 21.0000",
		"Regular investment return: 2.4661",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {

	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "fincalc dev") {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestFundCommand_AmountIsTotal(t *testing.T) {
	flag := fundCmd.Flags().Lookup("amount")
	if flag == nil {
		t.Fatal("fund command has no --amount flag")
	}
	if flag.Usage != "total amount invested" {
		t.Errorf("unexpected --amount help %q", flag.Usage)
	}
}
