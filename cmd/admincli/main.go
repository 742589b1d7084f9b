package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"catalogadmin/internal/auth"
	"catalogadmin/internal/controller"
	"catalogadmin/internal/gateway"
	"catalogadmin/pkg/config"
	"catalogadmin/pkg/errors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	tokens := auth.NewFileStore(cfg.TokenPath)
	gw := gateway.New(cfg.BaseURL, cfg.HTTPTimeout, tokens)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "login":
		err = runLogin(ctx, gw, os.Args[2:])
	case "logout":
		err = gw.Auth.Logout(ctx)
	case "dashboard":
		err = runDashboard(ctx, gw)
	case "products":
		err = runProducts(ctx, gw)
	case "enquiries":
		err = runEnquiries(ctx, gw)
	case "distributors":
		err = runDistributors(ctx, gw)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		if errors.Is(err, errors.CodeAuthenticationRequired) {
			log.Fatalf("Not logged in. Run: admincli login -u <username>")
		}
		log.Fatalf("%s", errors.Message(err))
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: admincli <login|logout|dashboard|products|enquiries|distributors> [flags]")
}

func runLogin(ctx context.Context, gw *gateway.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("u", "", "admin username")
	password := fs.String("p", "", "admin password (prefer ADMIN_PASSWORD env)")
	fs.Parse(args)

	if *password == "" {
		*password = os.Getenv("ADMIN_PASSWORD")
	}
	if err := gw.Auth.Login(ctx, gateway.Credentials{Username: *username, Password: *password}); err != nil {
		return err
	}
	fmt.Println("Logged in.")
	return nil
}

func runDashboard(ctx context.Context, gw *gateway.Client) error {
	dash := controller.NewDashboard(ctx, gw)
	defer dash.Close()
	if err := dash.Load(); err != nil {
		return err
	}

	counts := dash.Counts()
	fmt.Printf("Products:     %d\n", counts.Products)
	fmt.Printf("Addresses:    %d\n", counts.Addresses)
	fmt.Printf("Footers:      %d\n", counts.Footers)
	fmt.Printf("Distributors: %d\n", counts.Distributors)
	fmt.Printf("Enquiries:    %d\n", counts.Enquiries)

	if recent := dash.RecentEnquiries(); len(recent) > 0 {
		fmt.Println("\nRecent enquiries:")
		for _, e := range recent {
			fmt.Printf("  [%s] %s - %s\n", e.Status, e.Name, e.Subject)
		}
	}
	return nil
}

func runProducts(ctx context.Context, gw *gateway.Client) error {
	list := controller.NewProducts(ctx, gw)
	defer list.Close()
	if err := list.Load(); err != nil {
		return err
	}
	for _, p := range list.List() {
		fmt.Printf("%-24s %-10s %-20s %s\n", p.ID, p.Status, p.Category, p.Name)
	}
	return nil
}

func runEnquiries(ctx context.Context, gw *gateway.Client) error {
	inbox := controller.NewEnquiries(ctx, gw)
	defer inbox.Close()
	if err := inbox.Load(); err != nil {
		return err
	}
	for _, e := range inbox.List() {
		fmt.Printf("%-24s %-12s %-24s %s\n", e.ID, e.Status, e.Email, e.Subject)
	}
	return nil
}

func runDistributors(ctx context.Context, gw *gateway.Client) error {
	review := controller.NewDistributors(ctx, gw)
	defer review.Close()
	if err := review.Load(); err != nil {
		return err
	}
	for _, a := range review.List() {
		fmt.Printf("%-24s %-10s %-24s %s\n", a.ID, a.Status, a.Email, a.Company)
	}
	return nil
}
