// invctl is a terminal front end for the inventory service, driving the
// typed API clients: login/logout, product catalog maintenance, order
// placement and stock transactions.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/example/inventory-client/internal/api"
	"github.com/example/inventory-client/internal/apiclient"
	"github.com/example/inventory-client/internal/config"
	"github.com/example/inventory-client/internal/model"
	"github.com/example/inventory-client/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invctl: %v\n", err)
		os.Exit(1)
	}

	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	var tokens session.TokenStore
	if cfg.RedisAddr != "" {
		tokens = session.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}), "", 0)
	} else {
		tokens = session.NewFileStore(cfg.TokenFile)
	}

	notifier := apiclient.NotifierFunc(func(severity apiclient.Severity, message string) {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", severity, message)
	})

	core, err := apiclient.New(apiclient.Options{
		BaseURL:    cfg.APIBaseURL,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
		TokenStore: tokens,
		Notifier:   notifier,
		OnUnauthorized: func() {
			fmt.Fprintln(os.Stderr, "session ended; run `invctl login` to sign in again")
		},
		Logger: logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to build API client")
	}

	client := api.NewClient(core, tokens)
	ctx := context.Background()

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	switch args[0] {
	case "login", "logout":
	default:
		// The request still goes out either way; the server stays
		// authoritative on token validity.
		warnExpiredSession(ctx, tokens, notifier)
	}

	switch args[0] {
	case "login":
		err = runLogin(ctx, client, args[1:])
	case "me":
		err = runMe(ctx, client)
	case "logout":
		err = client.Auth.Logout(ctx)
	case "products":
		err = runProducts(ctx, client, notifier, args[1:])
	case "orders":
		err = runOrders(ctx, client, args[1:])
	case "tx":
		err = runTransactions(ctx, client, args[1:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		// The transport already surfaced the message via the notifier.
		logger.WithError(err).Debug("command failed")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: invctl <command> [flags]

commands:
  login     -username, -password
  me
  logout
  products  list [-page -size] | get -id | create [...] | delete -id
  orders    list [-page -size] | get -id | create -customer-id -customer-name -items id:qty[,id:qty...]
  tx        list [-page -size] | create -product-id -type -quantity -reason [-ref]`)
}

func runLogin(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	result, err := client.Auth.Login(ctx, model.LoginCredentials{
		Username: *username,
		Password: *password,
	})
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", result.User.Username, result.User.Role)
	return nil
}

func runMe(ctx context.Context, client *api.Client) error {
	user, err := client.Auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	return printJSON(user)
}

func runProducts(ctx context.Context, client *api.Client, notifier apiclient.Notifier, args []string) error {
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}
	switch args[0] {
	case "list":
		page, err := parsePage(args[1:])
		if err != nil {
			return err
		}
		out, err := client.Products.List(ctx, page)
		if err != nil {
			return err
		}
		warnLowStock(notifier, out.Content)
		return printJSON(out)
	case "get":
		id, err := parseID(args[1:])
		if err != nil {
			return err
		}
		out, err := client.Products.Get(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(out)
	case "create":
		fs := flag.NewFlagSet("products create", flag.ExitOnError)
		dto := model.CreateProductDTO{}
		fs.StringVar(&dto.Name, "name", "", "product name")
		fs.StringVar(&dto.Description, "description", "", "product description")
		fs.StringVar(&dto.SKU, "sku", "", "unique SKU")
		fs.StringVar(&dto.Category, "category", "", "category")
		fs.Float64Var(&dto.Price, "price", 0, "unit price")
		fs.IntVar(&dto.StockQuantity, "stock", 0, "initial stock quantity")
		fs.IntVar(&dto.MinStockLevel, "min-stock", 0, "low-stock threshold")
		fs.StringVar(&dto.Supplier, "supplier", "", "supplier name")
		fs.Parse(args[1:])

		out, err := client.Products.Create(ctx, dto)
		if err != nil {
			return err
		}
		return printJSON(out)
	case "delete":
		id, err := parseID(args[1:])
		if err != nil {
			return err
		}
		return client.Products.Delete(ctx, id)
	default:
		usage()
		os.Exit(2)
		return nil
	}
}

func runOrders(ctx context.Context, client *api.Client, args []string) error {
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}
	switch args[0] {
	case "list":
		page, err := parsePage(args[1:])
		if err != nil {
			return err
		}
		out, err := client.Orders.List(ctx, page)
		if err != nil {
			return err
		}
		return printJSON(out)
	case "get":
		id, err := parseID(args[1:])
		if err != nil {
			return err
		}
		out, err := client.Orders.Get(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(out)
	case "create":
		fs := flag.NewFlagSet("orders create", flag.ExitOnError)
		customerID := fs.Int64("customer-id", 0, "customer id")
		customerName := fs.String("customer-name", "", "customer name")
		items := fs.String("items", "", "order lines as id:qty[,id:qty...]")
		fs.Parse(args[1:])

		lines, err := parseOrderItems(*items)
		if err != nil {
			return err
		}
		out, err := client.Orders.Create(ctx, model.CreateOrderDTO{
			CustomerID:   *customerID,
			CustomerName: *customerName,
			Items:        lines,
		})
		if err != nil {
			return err
		}
		return printJSON(out)
	default:
		usage()
		os.Exit(2)
		return nil
	}
}

func runTransactions(ctx context.Context, client *api.Client, args []string) error {
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}
	switch args[0] {
	case "list":
		page, err := parsePage(args[1:])
		if err != nil {
			return err
		}
		out, err := client.Transactions.List(ctx, page)
		if err != nil {
			return err
		}
		return printJSON(out)
	case "create":
		fs := flag.NewFlagSet("tx create", flag.ExitOnError)
		productID := fs.Int64("product-id", 0, "product id")
		txType := fs.String("type", string(model.StockIn), "STOCK_IN, STOCK_OUT or ADJUSTMENT")
		quantity := fs.Int("quantity", 0, "quantity moved")
		reason := fs.String("reason", "", "why the stock moved")
		ref := fs.Int64("ref", 0, "optional reference id (e.g. an order)")
		fs.Parse(args[1:])

		dto := model.CreateTransactionDTO{
			ProductID: *productID,
			Type:      model.TransactionType(*txType),
			Quantity:  *quantity,
			Reason:    *reason,
		}
		if *ref != 0 {
			dto.ReferenceID = ref
		}
		out, err := client.Transactions.Create(ctx, dto)
		if err != nil {
			return err
		}
		return printJSON(out)
	default:
		usage()
		os.Exit(2)
		return nil
	}
}

func parsePage(args []string) (model.PageRequest, error) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	page := fs.Int("page", model.DefaultPage, "zero-based page index")
	size := fs.Int("size", model.DefaultSize, "page size")
	fs.Parse(args)
	return model.PageRequest{Page: *page, Size: *size}, nil
}

func parseID(args []string) (int64, error) {
	fs := flag.NewFlagSet("id", flag.ExitOnError)
	id := fs.Int64("id", 0, "entity id")
	fs.Parse(args)
	if *id <= 0 {
		return 0, fmt.Errorf("a positive -id is required")
	}
	return *id, nil
}

func parseOrderItems(s string) ([]model.CreateOrderItemDTO, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("-items is required, e.g. -items 4:2,9:1")
	}
	parts := strings.Split(s, ",")
	items := make([]model.CreateOrderItemDTO, 0, len(parts))
	for _, part := range parts {
		idQty := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(idQty) != 2 {
			return nil, fmt.Errorf("bad order line %q, want id:qty", part)
		}
		id, err := strconv.ParseInt(idQty[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad product id in %q: %w", part, err)
		}
		qty, err := strconv.Atoi(idQty[1])
		if err != nil {
			return nil, fmt.Errorf("bad quantity in %q: %w", part, err)
		}
		items = append(items, model.CreateOrderItemDTO{ProductID: id, Quantity: qty})
	}
	return items, nil
}

// warnExpiredSession emits a login hint when the stored token is
// already past its expiry, saving a round trip that is bound to fail
// with 401. Opaque (non-JWT) tokens are left for the server to judge.
func warnExpiredSession(ctx context.Context, tokens session.TokenStore, notifier apiclient.Notifier) {
	token, err := tokens.Get(ctx)
	if err != nil || token == "" {
		return
	}
	expired, err := session.TokenExpired(token, time.Now())
	if err == nil && expired {
		notifier.Notify(apiclient.SeverityWarning, "stored session has expired; run `invctl login` to sign in again")
	}
}

// warnLowStock flags catalog rows at or below their replenishment
// threshold, the comparison the service's dashboard surfaces.
func warnLowStock(notifier apiclient.Notifier, products []model.Product) {
	for _, p := range products {
		if p.LowStock() {
			notifier.Notify(apiclient.SeverityWarning, fmt.Sprintf(
				"low stock: %s (%s) has %d on hand, threshold %d",
				p.Name, p.SKU, p.StockQuantity, p.MinStockLevel))
		}
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
