package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli"

	"loan-calculator/domain"
	"loan-calculator/finance"
	"loan-calculator/logger"
	"loan-calculator/repository"
	"loan-calculator/service"
)

var (
	principalFlag = cli.StringFlag{Name: "principal", Usage: "amount borrowed, e.g. 150000 or \"150 000,00\"", Required: true}
	termFlag      = cli.IntFlag{Name: "term", Usage: "number of periods", Required: true}
	rateFlag      = cli.StringFlag{Name: "rate", Usage: "periodic rate, e.g. 0.004 for 0.4% per period"}
	paymentFlag   = cli.StringFlag{Name: "payment", Usage: "periodic payment"}
	feesFlag      = cli.StringFlag{Name: "fees", Value: "0", Usage: "fees paid up front"}
	jsonFlag      = cli.BoolFlag{Name: "json", Usage: "print JSON instead of a table"}
	logLevelFlag  = cli.StringFlag{Name: "log-level", Value: logger.WarnLevel, Usage: "debug, info, warn or error"}
)

func main() {
	app := cli.NewApp()
	app.Name = "loancalc"
	app.Usage = "loan payments, implicit rates and amortization schedules"
	app.Flags = []cli.Flag{logLevelFlag}
	app.Commands = []cli.Command{
		{
			Name:   "payment",
			Usage:  "periodic payment of a loan",
			Flags:  []cli.Flag{principalFlag, termFlag, rateFlag, jsonFlag},
			Action: withService(runPayment),
		},
		{
			Name:  "rate",
			Usage: "periodic rate implied by a payment",
			Flags: []cli.Flag{principalFlag, termFlag, paymentFlag, feesFlag, jsonFlag,
				cli.BoolFlag{Name: "exact-fees", Usage: "keep fractional fees instead of ignoring them"},
			},
			Action: withService(runRate),
		},
		{
			Name:   "apr",
			Usage:  "annual effective rate including fees, from a monthly rate or payment",
			Flags:  []cli.Flag{principalFlag, termFlag, rateFlag, paymentFlag, feesFlag, jsonFlag},
			Action: withService(runEffectiveRate),
		},
		{
			Name:  "schedule",
			Usage: "amortization schedule",
			Flags: []cli.Flag{principalFlag, termFlag, rateFlag, jsonFlag,
				cli.IntFlag{Name: "deferred", Usage: "interest-only periods at the start"},
				cli.IntFlag{Name: "from", Usage: "first period to print"},
				cli.IntFlag{Name: "to", Usage: "last period to print"},
			},
			Action: withService(runSchedule),
		},
		{
			Name:  "convert",
			Usage: "convert a rate between compounding periods",
			Flags: []cli.Flag{rateFlag, jsonFlag,
				cli.StringFlag{Name: "from", Value: "monthly", Usage: "annual, semiannual, quarterly or monthly"},
				cli.StringFlag{Name: "to", Value: "annual", Usage: "annual, semiannual, quarterly or monthly"},
				cli.IntFlag{Name: "decimals", Value: finance.NoRounding, Usage: "round the result, negative keeps it raw"},
			},
			Action: withService(runConvert),
		},
		{
			Name:  "value",
			Usage: "present or future value of a sum or of a series of payments",
			Flags: []cli.Flag{termFlag, rateFlag, jsonFlag,
				cli.StringFlag{Name: "amount", Usage: "sum, or payment for annuities", Required: true},
				cli.StringFlag{Name: "kind", Value: "fv", Usage: "fv, pv, fv-annuity or pv-annuity"},
			},
			Action: runValue,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "loancalc:", err)
		os.Exit(1)
	}
}

type command func(ctx context.Context, c *cli.Context, svc *service.LoanService) error

func withService(run command) func(*cli.Context) error {
	return func(c *cli.Context) error {
		log := logger.Get(c.GlobalString(logLevelFlag.Name))
		svc := service.NewLoanService(repository.NewLoanRepositoryMemory(), repository.NewMemoryCache(), log)
		return run(context.Background(), c, svc)
	}
}

func number(c *cli.Context, name string) domain.Number {
	return domain.Number(finance.ToNumber(c.String(name)))
}

func optionalNumber(c *cli.Context, name string) *domain.Number {
	if !c.IsSet(name) {
		return nil
	}
	n := number(c, name)
	return &n
}

func runPayment(ctx context.Context, c *cli.Context, svc *service.LoanService) error {
	res, err := svc.CalculateLoan(ctx, domain.LoanInput{
		Principal: number(c, principalFlag.Name),
		Term:      c.Int(termFlag.Name),
		Rate:      number(c, rateFlag.Name),
	})
	if err != nil {
		return err
	}
	if c.Bool(jsonFlag.Name) {
		return printJSON(os.Stdout, res)
	}
	fmt.Printf("payment:        %.2f\ntotal payment:  %.2f\ntotal interest: %.2f\n",
		res.Payment, res.TotalPayment, res.TotalInterest)
	return nil
}

func runRate(ctx context.Context, c *cli.Context, svc *service.LoanService) error {
	res, err := svc.SolveRate(ctx, domain.RateInput{
		Principal: number(c, principalFlag.Name),
		Term:      c.Int(termFlag.Name),
		Payment:   number(c, paymentFlag.Name),
		Fees:      number(c, feesFlag.Name),
		ExactFees: c.Bool("exact-fees"),
	})
	return printRate(c, res, err)
}

func runEffectiveRate(ctx context.Context, c *cli.Context, svc *service.LoanService) error {
	res, err := svc.EffectiveRate(ctx, domain.EffectiveRateInput{
		Principal: number(c, principalFlag.Name),
		Term:      c.Int(termFlag.Name),
		Rate:      optionalNumber(c, rateFlag.Name),
		Payment:   optionalNumber(c, paymentFlag.Name),
		Fees:      number(c, feesFlag.Name),
	})
	return printRate(c, res, err)
}

func printRate(c *cli.Context, res domain.RateResult, err error) error {
	if err != nil && res.Reason == domain.ReasonNone {
		return err
	}
	if c.Bool(jsonFlag.Name) {
		if perr := printJSON(os.Stdout, res); perr != nil {
			return perr
		}
		return err
	}
	if err != nil {
		fmt.Printf("rate: %v (%s after %d iterations)\n", res.Legacy(), res.Reason, res.Iterations)
		return err
	}
	fmt.Printf("rate: %v\n", res.Rate)
	return nil
}

func runSchedule(ctx context.Context, c *cli.Context, svc *service.LoanService) error {
	s, err := svc.BuildSchedule(ctx, domain.ScheduleInput{
		Principal: number(c, principalFlag.Name),
		Term:      c.Int(termFlag.Name),
		Rate:      number(c, rateFlag.Name),
		Deferred:  c.Int("deferred"),
		From:      c.Int("from"),
		To:        c.Int("to"),
	})
	if err != nil {
		return err
	}
	if c.Bool(jsonFlag.Name) {
		return printJSON(os.Stdout, s)
	}
	return printSchedule(os.Stdout, s)
}

func printSchedule(w io.Writer, s domain.Schedule) error {
	h := s.Header
	fmt.Fprintf(w, "principal %.2f, %d periods at %v, payment %.2f", h.Principal, h.Term, h.Rate, h.Payment)
	if h.Deferred > 0 {
		fmt.Fprintf(w, " after %d interest-only payments of %.2f", h.Deferred, h.DeferredPayment)
	}
	fmt.Fprintf(w, "\nperiods %d to %d\n\n", h.From, h.To)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "period\topening\tinterest\tprincipal\tclosing\t")
	for _, r := range s.Rows {
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
			r.Period, r.OpeningBalance, r.Interest, r.Principal, r.ClosingBalance)
	}
	return tw.Flush()
}

func runConvert(ctx context.Context, c *cli.Context, svc *service.LoanService) error {
	in := domain.ConversionInput{
		Rate: number(c, rateFlag.Name),
		From: c.String("from"),
		To:   c.String("to"),
	}
	if dec := c.Int("decimals"); dec >= 0 {
		in.Decimals = &dec
	}
	res, err := svc.ConvertRate(ctx, in)
	if err != nil {
		return err
	}
	if c.Bool(jsonFlag.Name) {
		return printJSON(os.Stdout, res)
	}
	fmt.Printf("%s rate: %v\n", res.To, res.Rate)
	return nil
}

func runValue(c *cli.Context) error {
	amount := finance.ToNumber(c.String("amount"))
	n := c.Int(termFlag.Name)
	t := finance.ToNumber(c.String(rateFlag.Name))

	var v float64
	switch kind := c.String("kind"); kind {
	case "fv":
		v = finance.FutureValue(amount, n, t, 2)
	case "pv":
		v = finance.PresentValue(amount, n, t, 2)
	case "fv-annuity":
		v = finance.FutureValueAnnuity(amount, n, t, 2)
	case "pv-annuity":
		v = finance.PresentValueAnnuity(amount, n, t, 2)
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}
	if c.Bool(jsonFlag.Name) {
		return printJSON(os.Stdout, map[string]any{"kind": c.String("kind"), "value": v})
	}
	fmt.Printf("%s: %.2f\n", c.String("kind"), v)
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
