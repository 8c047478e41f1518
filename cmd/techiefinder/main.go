// Command techiefinder is the terminal client for the TechieFinder service
// marketplace. It restores the persisted session, routes to the screens the
// session allows, and talks to the backend through the API gateway.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/techiefinder/client/internal/core/domain"
	"github.com/techiefinder/client/internal/core/ports"
	"github.com/techiefinder/client/internal/core/service"
	"github.com/techiefinder/client/internal/forms"
	"github.com/techiefinder/client/internal/infrastructure/api"
	"github.com/techiefinder/client/internal/infrastructure/storage"
	"github.com/techiefinder/client/internal/pkg/config"
	"github.com/techiefinder/client/internal/ui"
	"github.com/techiefinder/client/pkg/logger"
)

const usage = `usage: techiefinder <command> [flags]

commands:
  login       -email -password
  register    -first -last -email -phone -password -confirm [-role USER|TECHNICIAN]
  logout
  whoami
  nav
  home
  search      [-q] [-category] [-location] [-min-rating]
  technician  <id>
  categories
  dashboard
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return errors.New("missing command")
	}

	credPath := cfg.CredentialPath
	if credPath == "" {
		var err error
		credPath, err = storage.DefaultPath()
		if err != nil {
			return err
		}
	}

	store := storage.NewFileStore(credPath)
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, log)
	session := service.NewSessionService(store, client, log)
	client.SetCredentialSource(func() string { return session.Current().Credential })
	client.SetUnauthorizedHook(session.Invalidate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := session.Restore(ctx); err != nil {
		return err
	}

	app := &app{session: session, client: client}
	command, rest := args[0], args[1:]

	switch command {
	case "login":
		return app.login(ctx, rest)
	case "register":
		return app.register(ctx, rest)
	case "logout":
		return app.logout(ctx)
	case "whoami":
		return app.whoami()
	case "nav":
		return app.nav()
	case "home":
		return app.home(ctx)
	case "search":
		return app.search(ctx, rest)
	case "technician":
		return app.technician(ctx, rest)
	case "categories":
		return app.categories(ctx)
	case "dashboard":
		return app.dashboard(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

type app struct {
	session ports.SessionService
	client  ports.Gateway
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form := forms.LoginForm{Email: *email, Password: *password}
	if err := form.Validate(); err != nil {
		return printValidation(err)
	}

	if err := a.session.Login(ctx, form.Email, form.Password); err != nil {
		return err
	}
	fmt.Printf("Welcome back, %s!\n", a.session.Current().Identity.FirstName)
	return a.nav()
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	email := fs.String("email", "", "account email")
	phone := fs.String("phone", "", "phone number")
	password := fs.String("password", "", "password")
	confirm := fs.String("confirm", "", "password confirmation")
	role := fs.String("role", string(domain.RoleUser), "USER or TECHNICIAN")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form := forms.RegisterForm{
		FirstName:       *first,
		LastName:        *last,
		Email:           *email,
		PhoneNumber:     *phone,
		Password:        *password,
		ConfirmPassword: *confirm,
		Role:            domain.Role(*role),
	}
	if err := form.Validate(); err != nil {
		return printValidation(err)
	}

	if err := a.session.Register(ctx, form.Input()); err != nil {
		return err
	}
	fmt.Printf("Account created. Welcome, %s!\n", a.session.Current().Identity.FirstName)
	return a.nav()
}

func (a *app) logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

func (a *app) whoami() error {
	session := a.session.Current()
	if !session.Authenticated() {
		fmt.Println("Not signed in.")
		return nil
	}
	identity := session.Identity
	fmt.Printf("%s <%s> (%s)\n", identity.FullName(), identity.Email, identity.Role)
	return nil
}

func (a *app) nav() error {
	session := a.session.Current()
	tree, err := service.Route(session)
	if err != nil {
		return err
	}
	ui.RenderScreenTree(os.Stdout, tree, session.Identity)
	return nil
}

func (a *app) home(ctx context.Context) error {
	technicians, err := a.client.AvailableTechnicians(ctx, domain.TechnicianQuery{Limit: 5})
	if err != nil {
		return err
	}
	fmt.Println("Featured technicians")
	ui.RenderTechnicianList(os.Stdout, technicians)
	return nil
}

func (a *app) search(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	q := fs.String("q", "", "free-text search")
	category := fs.String("category", "", "category slug")
	location := fs.String("location", "", "location filter")
	minRating := fs.Float64("min-rating", 0, "minimum average rating")
	if err := fs.Parse(args); err != nil {
		return err
	}

	technicians, err := a.client.AvailableTechnicians(ctx, domain.TechnicianQuery{
		Search:    *q,
		Category:  *category,
		Location:  *location,
		MinRating: *minRating,
	})
	if err != nil {
		return err
	}
	ui.RenderTechnicianList(os.Stdout, technicians)
	return nil
}

func (a *app) technician(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: techiefinder technician <id>")
	}
	var id int64
	if _, err := fmt.Sscan(args[0], &id); err != nil {
		return fmt.Errorf("invalid technician id %q", args[0])
	}

	technician, err := a.client.TechnicianByID(ctx, id)
	if err != nil {
		return err
	}
	ui.RenderTechnicianDetail(os.Stdout, technician)
	return nil
}

func (a *app) categories(ctx context.Context) error {
	categories, err := a.client.Categories(ctx)
	if err != nil {
		return err
	}
	ui.RenderCategories(os.Stdout, categories)
	return nil
}

func (a *app) dashboard(ctx context.Context) error {
	session := a.session.Current()
	if !session.Authenticated() {
		return domain.ErrNotAuthenticated
	}

	switch session.Identity.Role {
	case domain.RoleTechnician:
		bookings, err := a.client.BookingsForTechnician(ctx, session.Identity.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Job requests for %s\n", session.Identity.FullName())
		ui.RenderBookings(os.Stdout, bookings, true)
	default:
		bookings, err := a.client.BookingsForUser(ctx, session.Identity.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Bookings for %s\n", session.Identity.FullName())
		ui.RenderBookings(os.Stdout, bookings, false)
	}
	return nil
}

// printValidation shows field errors inline, mirroring how the screens
// render them, and still fails the command.
func printValidation(err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		for _, msg := range ve.FieldMessages() {
			fmt.Fprintln(os.Stderr, msg)
		}
		return errors.New("validation failed")
	}
	return err
}
