// Package cli is the interactive terminal front end. It drives the auth and
// catalog services, renders the inventory with its derived fields, and
// carries the gate's pin challenge over stdin.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shelfwise/shelfwise/internal/auth"
	"github.com/shelfwise/shelfwise/internal/catalog"
	"github.com/shelfwise/shelfwise/internal/gate"
	"github.com/shelfwise/shelfwise/internal/inventory"
	"github.com/shelfwise/shelfwise/pkg/enums"
	pkgerrors "github.com/shelfwise/shelfwise/pkg/errors"
	"github.com/shelfwise/shelfwise/pkg/logger"
	"github.com/shelfwise/shelfwise/pkg/models"
)

// App is the terminal client. It owns the read loop and the current route.
type App struct {
	auth      auth.Service
	catalog   *catalog.Client
	logg      *logger.Logger
	threshold int

	in      *bufio.Scanner
	out     io.Writer
	route   gate.Route
	gate    *gate.Gate
	running bool
}

// AppParams bundles the client's dependencies.
type AppParams struct {
	Auth    auth.Service
	Catalog *catalog.Client
	Logger  *logger.Logger
	// LowStockThreshold drives the stock alert banner.
	LowStockThreshold int
	Input             io.Reader
	Output            io.Writer
}

// NewApp wires the client together, registering itself as the gate's UI and
// navigator.
func NewApp(params AppParams) (*App, error) {
	if params.Auth == nil {
		return nil, fmt.Errorf("auth service is required")
	}
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog client is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if params.Input == nil || params.Output == nil {
		return nil, fmt.Errorf("input and output are required")
	}
	threshold := params.LowStockThreshold
	if threshold <= 0 {
		threshold = inventory.DefaultLowStockThreshold
	}

	app := &App{
		auth:      params.Auth,
		catalog:   params.Catalog,
		logg:      params.Logger,
		threshold: threshold,
		in:        bufio.NewScanner(params.Input),
		out:       params.Output,
		route:     gate.RouteSignIn,
	}

	g, err := gate.New(params.Auth, app, app)
	if err != nil {
		return nil, err
	}
	app.gate = g
	return app, nil
}

// PromptPin implements gate.UI.
func (a *App) PromptPin(_ context.Context, prompt string) (string, error) {
	return a.prompt(prompt)
}

// Notify implements gate.UI.
func (a *App) Notify(_ context.Context, message string) {
	fmt.Fprintln(a.out, message)
}

// NavigateTo implements gate.Navigator.
func (a *App) NavigateTo(route gate.Route) {
	a.route = route
}

// Run reads commands until exit or the input closes.
func (a *App) Run(ctx context.Context) error {
	a.running = true
	fmt.Fprintln(a.out, "shelfwise inventory client")
	for a.running {
		a.printMenu(ctx)
		line, err := a.prompt("> ")
		if err != nil {
			return nil
		}
		a.dispatch(ctx, strings.Fields(line))
	}
	return nil
}

func (a *App) printMenu(ctx context.Context) {
	if !a.auth.IsLoggedIn(ctx) {
		fmt.Fprintln(a.out, "\ncommands: login, register, exit")
		return
	}
	fmt.Fprintln(a.out, "\ncommands: list, search, view <id>, rate <id>, add, update <id>, delete <id>, logout, exit")
}

func (a *App) dispatch(ctx context.Context, args []string) {
	if len(args) == 0 {
		return
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "exit", "quit":
		if a.auth.IsLoggedIn(ctx) {
			a.logout(ctx)
		}
		a.running = false
	case "login":
		a.login(ctx)
	case "register":
		a.register(ctx)
	case "logout":
		a.logout(ctx)
	case "list":
		a.list(ctx)
	case "search":
		a.search(ctx)
	case "view":
		a.view(ctx, rest)
	case "rate":
		a.rate(ctx, rest)
	case "add":
		a.add(ctx)
	case "update":
		a.update(ctx, rest)
	case "delete":
		a.delete(ctx, rest)
	default:
		fmt.Fprintf(a.out, "unknown command %q\n", cmd)
	}
}

func (a *App) login(ctx context.Context) {
	email, err := a.prompt("Email: ")
	if err != nil {
		return
	}
	password, err := a.prompt("Password: ")
	if err != nil {
		return
	}
	user, loginErr := a.auth.Login(ctx, email, password)
	if loginErr != nil {
		a.fail(ctx, loginErr)
		return
	}
	a.route = gate.RouteInventory
	fmt.Fprintf(a.out, "Welcome back, %s!\n", user.FirstName)
}

func (a *App) register(ctx context.Context) {
	req := auth.RegisterRequest{}
	fields := []struct {
		label string
		dest  *string
	}{
		{"Email: ", &req.Email},
		{"Password: ", &req.Password},
		{"First name: ", &req.FirstName},
		{"Last name: ", &req.LastName},
		{"Location: ", &req.Location},
		{"Mobile number: ", &req.MobileNumber},
		{"Role (user/admin): ", &req.Role},
	}
	for _, f := range fields {
		value, err := a.prompt(f.label)
		if err != nil {
			return
		}
		*f.dest = value
	}

	check, err := a.auth.CheckDuplicateEmail(ctx, req.Email)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if check.Duplicate {
		fmt.Fprintln(a.out, "email already registered")
		return
	}

	if enums.Role(req.Role) == enums.RoleAdmin {
		pin, err := a.prompt("Admin pin: ")
		if err != nil {
			return
		}
		req.AdminPin = pin
	}

	if _, err := a.auth.Register(ctx, req); err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintln(a.out, "Registration successful. You can sign in now.")
}

func (a *App) logout(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil {
		a.fail(ctx, err)
		return
	}
	a.route = gate.RouteSignIn
	fmt.Fprintln(a.out, "Signed out.")
}

func (a *App) list(ctx context.Context) {
	if !a.gate.AllowRoute(ctx, gate.RouteInventory) {
		return
	}
	products, err := a.catalog.ListProducts(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	inventory.Annotate(products)

	for _, alert := range inventory.StockAlerts(products, a.threshold) {
		fmt.Fprintf(a.out, "! %s\n", alert)
	}
	a.printProducts(products)
}

func (a *App) search(ctx context.Context) {
	if !a.gate.AllowRoute(ctx, gate.RouteInventory) {
		return
	}
	categoryInput, err := a.prompt("Category (blank for all): ")
	if err != nil {
		return
	}
	term, err := a.prompt("Search term (blank for all): ")
	if err != nil {
		return
	}

	var category enums.Category
	if categoryInput != "" {
		parsed, parseErr := enums.ParseCategory(categoryInput)
		if parseErr != nil {
			fmt.Fprintf(a.out, "unknown category %q\n", categoryInput)
			return
		}
		category = parsed
	}

	products, err := a.catalog.ListProducts(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	filtered := inventory.Filter(products, category, term)
	inventory.Annotate(filtered)
	a.printProducts(filtered)
}

func (a *App) view(ctx context.Context, args []string) {
	id, ok := a.requireID(args, "view")
	if !ok {
		return
	}
	if !a.gate.AllowRoute(ctx, gate.RouteProductDetail(id)) {
		return
	}
	product, err := a.catalog.GetProduct(ctx, id)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	product.AvailabilityStatus = inventory.Classify(product.Quantity)

	fmt.Fprintf(a.out, "%s [%s] %s\n", product.Name, product.Category, product.AvailabilityStatus)
	fmt.Fprintf(a.out, "  %s\n", product.Description)
	fmt.Fprintf(a.out, "  price %.2f, %d in stock\n", product.Price, product.Quantity)
	if product.Supplier != nil {
		fmt.Fprintf(a.out, "  supplier: %s (%s)\n", product.Supplier.Name, product.Supplier.Contact)
	}
	fmt.Fprintf(a.out, "  average rating %.1f from %d ratings\n",
		inventory.AverageRating(product.Ratings), len(product.Ratings))
	for _, r := range product.Ratings {
		fmt.Fprintf(a.out, "    %d/5 %s\n", r.Rating, r.Review)
	}
}

func (a *App) rate(ctx context.Context, args []string) {
	id, ok := a.requireID(args, "rate")
	if !ok {
		return
	}
	if !a.gate.AllowRoute(ctx, gate.RouteProductDetail(id)) {
		return
	}
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	product, err := a.catalog.GetProduct(ctx, id)
	if err != nil {
		a.fail(ctx, err)
		return
	}

	var editIndex *int
	if idx := product.RatingBy(user.ID); idx >= 0 {
		answer, promptErr := a.prompt("You already rated this product. Edit your rating? (y/n): ")
		if promptErr != nil {
			return
		}
		if strings.EqualFold(answer, "y") {
			editIndex = &idx
		}
	}

	ratingInput, err := a.prompt("Rating (1-5): ")
	if err != nil {
		return
	}
	rating, _ := strconv.Atoi(ratingInput)
	review, err := a.prompt("Review: ")
	if err != nil {
		return
	}

	if err := inventory.MergeRating(product, user.ID, rating, review, editIndex); err != nil {
		a.fail(ctx, err)
		return
	}
	if _, err := a.catalog.UpdateProduct(ctx, *product); err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintln(a.out, "Rating saved.")
}

func (a *App) add(ctx context.Context) {
	if !a.gate.AllowRoute(ctx, gate.RouteAddProduct) {
		return
	}
	if !a.gate.Authorize(ctx) {
		return
	}
	input, ok := a.promptProduct(catalog.ProductInput{})
	if !ok {
		return
	}
	if err := input.Validate(); err != nil {
		a.fail(ctx, err)
		return
	}
	created, err := a.catalog.CreateProduct(ctx, input.Product())
	if err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintf(a.out, "Added %s (%s).\n", created.Name, created.ID)
}

func (a *App) update(ctx context.Context, args []string) {
	id, ok := a.requireID(args, "update")
	if !ok {
		return
	}
	if !a.gate.AllowRoute(ctx, gate.RouteUpdateProduct(id)) {
		return
	}
	if !a.gate.Authorize(ctx) {
		return
	}
	existing, err := a.catalog.GetProduct(ctx, id)
	if err != nil {
		a.fail(ctx, err)
		return
	}

	input, ok := a.promptProduct(catalog.ProductInput{
		Name:              existing.Name,
		Description:       existing.Description,
		Manufacturer:      existing.Manufacturer,
		ManufacturingDate: existing.ManufacturingDate,
		Price:             existing.Price,
		Quantity:          existing.Quantity,
		Category:          string(existing.Category),
	})
	if !ok {
		return
	}
	if err := input.Validate(); err != nil {
		a.fail(ctx, err)
		return
	}

	product := input.Product()
	product.ID = existing.ID
	product.Ratings = existing.Ratings
	if _, err := a.catalog.UpdateProduct(ctx, product); err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintln(a.out, "Product updated.")
}

func (a *App) delete(ctx context.Context, args []string) {
	id, ok := a.requireID(args, "delete")
	if !ok {
		return
	}
	if !a.gate.AllowRoute(ctx, gate.RouteInventory) {
		return
	}
	if !a.gate.Authorize(ctx) {
		return
	}
	if err := a.catalog.DeleteProduct(ctx, id); err != nil {
		a.fail(ctx, err)
		return
	}
	fmt.Fprintln(a.out, "Product deleted.")
}

// promptProduct collects the add/update form. Blank answers keep the given
// defaults so updates only retype what changes.
func (a *App) promptProduct(defaults catalog.ProductInput) (catalog.ProductInput, bool) {
	input := defaults

	text := []struct {
		label string
		dest  *string
	}{
		{"Name", &input.Name},
		{"Description", &input.Description},
		{"Manufacturer", &input.Manufacturer},
		{"Manufacturing date", &input.ManufacturingDate},
		{"Category", &input.Category},
		{"Supplier name", &input.SupplierName},
		{"Supplier contact", &input.SupplierContact},
	}
	for _, f := range text {
		value, err := a.prompt(fmt.Sprintf("%s [%s]: ", f.label, *f.dest))
		if err != nil {
			return input, false
		}
		if value != "" {
			*f.dest = value
		}
	}

	priceInput, err := a.prompt(fmt.Sprintf("Price [%.2f]: ", input.Price))
	if err != nil {
		return input, false
	}
	if priceInput != "" {
		price, parseErr := strconv.ParseFloat(priceInput, 64)
		if parseErr != nil {
			fmt.Fprintln(a.out, "price must be a number")
			return input, false
		}
		input.Price = price
	}

	quantityInput, err := a.prompt(fmt.Sprintf("Quantity [%d]: ", input.Quantity))
	if err != nil {
		return input, false
	}
	if quantityInput != "" {
		quantity, parseErr := strconv.Atoi(quantityInput)
		if parseErr != nil {
			fmt.Fprintln(a.out, "quantity must be a whole number")
			return input, false
		}
		input.Quantity = quantity
	}

	return input, true
}

func (a *App) printProducts(products []models.Product) {
	if len(products) == 0 {
		fmt.Fprintln(a.out, "no products found")
		return
	}
	for _, p := range products {
		fmt.Fprintf(a.out, "%s  %-24s %-12s qty %-4d %s\n",
			p.ID, p.Name, p.Category, p.Quantity, p.AvailabilityStatus)
	}
}

func (a *App) requireID(args []string, cmd string) (string, bool) {
	if len(args) != 1 || args[0] == "" {
		fmt.Fprintf(a.out, "usage: %s <id>\n", cmd)
		return "", false
	}
	return args[0], true
}

func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(a.in.Text()), nil
}

// fail prints the user-facing message and logs the full chain.
func (a *App) fail(ctx context.Context, err error) {
	fmt.Fprintln(a.out, pkgerrors.UserMessage(err))
	a.logg.Error(ctx, "command failed", err)
}
