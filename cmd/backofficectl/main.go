package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/dentastore/backoffice-client/internal/application/service"
	"github.com/dentastore/backoffice-client/internal/config"
	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/export/excel"
	"github.com/dentastore/backoffice-client/internal/export/pdf"
	"github.com/dentastore/backoffice-client/internal/infrastructure/repository"
	"github.com/dentastore/backoffice-client/internal/infrastructure/rest"
	"github.com/dentastore/backoffice-client/internal/session"
	"github.com/dentastore/backoffice-client/pkg/logger"
	"github.com/dentastore/backoffice-client/pkg/money"
)

const usage = `usage: backofficectl <command> [args]

commands:
  login <username> <password>   sign in and persist the session
  logout                        sign out
  dashboard                     landing summary
  quotations                    list active quotations
  quotation <id>                show one assembled quotation
  quotation-pdf <id> <file>     export one quotation as PDF
  cashbox                       show the open cash box and its reconciliation
  report <from> <to> <file>     export the income report as xlsx (dates YYYY-MM-DD)
`

type app struct {
	auth          *service.AuthService
	quotations    *service.QuotationService
	cashBoxes     *service.CashBoxService
	dashboard     *service.DashboardService
	reports       *service.ReportService
	excelExporter *excel.Generator
	pdfExporter   *pdf.Generator
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.App.Env)

	cell := session.NewCell(session.NewFileStore(cfg.Session.FilePath))
	client := rest.NewClient(rest.Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Session: cell,
		Limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst),
		Logger:  log,
		OnUnauthorized: func() {
			fmt.Fprintln(os.Stderr, "session expired, please sign in again")
		},
	})

	// Initialize repositories
	quotationRepo := repository.NewQuotationRepository(client, log)
	quotationServiceRepo := repository.NewQuotationServiceRepository(client, log)
	paymentRepo := repository.NewQuotationPaymentRepository(client, log)
	commissionRepo := repository.NewCommissionRepository(client, log)
	doctorRepo := repository.NewDoctorRepository(client, log)
	productRepo := repository.NewProductRepository(client, log)
	saleRepo := repository.NewSaleRepository(client, log)
	cashBoxRepo := repository.NewCashBoxRepository(client, log)
	movementRepo := repository.NewMovementRepository(client, log)
	expenseRepo := repository.NewExpenseRepository(client, log)
	authRepo := repository.NewAuthRepository(client, log)

	a := &app{
		auth:          service.NewAuthService(authRepo, cell, log),
		quotations:    service.NewQuotationService(quotationRepo, quotationServiceRepo, paymentRepo, commissionRepo, log),
		cashBoxes:     service.NewCashBoxService(cashBoxRepo, movementRepo, expenseRepo, log),
		dashboard:     service.NewDashboardService(quotationRepo, doctorRepo, productRepo, saleRepo, log),
		reports:       service.NewReportService(quotationRepo, paymentRepo, saleRepo, cashBoxRepo, expenseRepo, log),
		excelExporter: excel.NewGenerator(),
		pdfExporter:   pdf.NewGenerator(),
	}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		if len(args) != 2 {
			return fmt.Errorf("login needs a username and a password")
		}
		user, err := a.auth.Login(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("signed in as %s (%s)\n", user.Username, user.Role)
		return nil

	case "logout":
		return a.auth.Logout(ctx)

	case "dashboard":
		stats := a.dashboard.Stats(ctx)
		fmt.Printf("active quotations: %d (pending %s)\n", stats.ActiveQuotations, money.Format(stats.PendingTotal))
		fmt.Printf("doctors: %d  products: %d\n", stats.TotalDoctors, stats.TotalProducts)
		fmt.Printf("sales: %d (total %s)\n", stats.TotalSales, money.Format(stats.SalesTotal))
		return nil

	case "quotations":
		quotations, err := a.quotations.ListActive(ctx)
		if err != nil {
			return err
		}
		for _, q := range quotations {
			fmt.Printf("#%d  %s  %s  total %s  pending %s  (%d services, %d payments)\n",
				q.ID, q.Date.Format("2006-01-02"), q.ClientName,
				money.Format(q.Total), money.Format(q.PendingAmount),
				len(q.Services), len(q.Payments))
		}
		return nil

	case "quotation":
		if len(args) != 1 {
			return fmt.Errorf("quotation needs an id")
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		quotation, err := a.quotations.Get(ctx, id)
		if err != nil {
			return err
		}
		printQuotation(quotation)
		return nil

	case "quotation-pdf":
		if len(args) != 2 {
			return fmt.Errorf("quotation-pdf needs an id and an output file")
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		quotation, err := a.quotations.Get(ctx, id)
		if err != nil {
			return err
		}
		data, err := a.pdfExporter.Generate(quotation)
		if err != nil {
			return err
		}
		return os.WriteFile(args[1], data, 0o644)

	case "cashbox":
		box, err := a.cashBoxes.Current(ctx)
		if err != nil {
			return err
		}
		if box == nil {
			fmt.Println("no open cash box")
			return nil
		}
		recon := a.cashBoxes.Reconcile(box)
		fmt.Printf("box #%d opened %s  cash %s  qr %s\n",
			box.ID, box.OpenedAt.Format("2006-01-02"),
			money.Format(box.CashTotal), money.Format(box.QRTotal))
		if recon.Balanced() {
			fmt.Println("ledger balanced")
		} else {
			fmt.Printf("drift: cash %s  qr %s\n", money.Format(recon.CashDrift), money.Format(recon.QRDrift))
		}
		return nil

	case "report":
		if len(args) != 3 {
			return fmt.Errorf("report needs a start date, an end date and an output file")
		}
		from, err := time.Parse("2006-01-02", args[0])
		if err != nil {
			return fmt.Errorf("invalid start date %q", args[0])
		}
		to, err := time.Parse("2006-01-02", args[1])
		if err != nil {
			return fmt.Errorf("invalid end date %q", args[1])
		}
		report, err := a.reports.IncomeReport(ctx, from, to)
		if err != nil {
			return err
		}
		data, err := a.excelExporter.Generate(report)
		if err != nil {
			return err
		}
		return os.WriteFile(args[2], data, 0o644)

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func printQuotation(q *entity.Quotation) {
	fmt.Printf("#%d  %s  %s (%s)  status %s\n", q.ID, q.Date.Format("2006-01-02"), q.ClientName, q.Phone, q.Status)
	fmt.Printf("total %s  pending %s\n", money.Format(q.Total), money.Format(q.PendingAmount))
	for _, svc := range q.Services {
		fmt.Printf("  service %d (specialty %d): %s\n", svc.ServiceID, svc.SpecialtyID, money.Format(svc.Price))
		for _, c := range svc.Commissions {
			fmt.Printf("    doctor %d: %s%% = %s (pending %s)\n",
				c.DoctorID, c.Percentage, money.Format(c.Amount), money.Format(c.PendingAmount))
		}
	}
	for _, p := range q.Payments {
		fmt.Printf("  payment %s: %s via %s\n", p.Date.Format("2006-01-02"), money.Format(p.Amount), p.Method)
	}
}
