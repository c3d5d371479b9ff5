package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"kalasangha.client/internal/client"
	"kalasangha.client/internal/config"
	"kalasangha.client/internal/domain/entities"
	"kalasangha.client/internal/i18n"
	"kalasangha.client/internal/session"
	listsync "kalasangha.client/internal/sync"
)

type adminDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (*client.Client, *session.Guard, error)
	out     io.Writer
}

func defaultAdminDeps() adminDeps {
	return adminDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: prepareClient,
		out:     os.Stdout,
	}
}

// prepareClient wires the token store, the route guard, and the HTTP client
// together. Backend 401/403 responses invalidate the guard.
func prepareClient(cfg *config.Config) (*client.Client, *session.Guard, error) {
	store, err := newTokenStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	guard := session.NewGuard(store, func() {
		fmt.Fprintln(os.Stderr, "session rejected, log in again with: admin login")
	})

	c := client.New(cfg.Client.BaseURL, cfg.Client.Timeout, store,
		client.WithAuthFailureHook(func(ctx context.Context) {
			guard.Invalidate(ctx)
		}))
	return c, guard, nil
}

func newTokenStore(cfg *config.Config) (session.TokenStore, error) {
	if cfg.Client.TokenStore == "redis" {
		return session.NewRedisStore(cfg.Client.EncryptionKey, "default")
	}
	return session.NewFileStore(cfg.Client.TokenPath)
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "Usage: admin <command> [flags]")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  login          -email -password")
	fmt.Fprintln(out, "  logout")
	fmt.Fprintln(out, "  status")
	fmt.Fprintln(out, "  events         list|create|delete")
	fmt.Fprintln(out, "  announcements  list|create|delete")
	fmt.Fprintln(out, "  teams          list|roster|create|reorder|delete")
	fmt.Fprintln(out, "  members        add|delete")
	fmt.Fprintln(out, "  gallery        list|upload|delete")
	fmt.Fprintln(out, "  contact        -name -email -message")
}

func runAdmin(args []string, deps adminDeps) error {
	if deps.loadEnv == nil {
		deps.loadEnv = func() error { return godotenv.Load() }
	}
	if deps.loadCfg == nil {
		deps.loadCfg = config.Load
	}
	if deps.prepare == nil {
		deps.prepare = prepareClient
	}
	if deps.out == nil {
		deps.out = os.Stdout
	}

	if len(args) == 0 {
		usage(deps.out)
		return fmt.Errorf("command required")
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	i18n.SetActive(i18n.Parse(cfg.Client.Language))

	c, guard, err := deps.prepare(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	switch args[0] {
	case "login":
		return runLogin(ctx, c, args[1:], deps.out)
	case "logout":
		return runLogout(ctx, c, deps.out)
	case "status":
		return runStatus(ctx, guard, deps.out)
	case "events":
		return runEvents(ctx, c, guard, args[1:], deps.out)
	case "announcements":
		return runAnnouncements(ctx, c, args[1:], deps.out)
	case "teams":
		return runTeams(ctx, c, guard, args[1:], deps.out)
	case "members":
		return runMembers(ctx, c, guard, args[1:], deps.out)
	case "gallery":
		return runGallery(ctx, c, args[1:], deps.out)
	case "contact":
		return runContact(ctx, c, args[1:], deps.out)
	default:
		usage(deps.out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runLogin(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "admin email (required)")
	password := fs.String("password", "", "admin password (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("-email and -password are required")
	}

	if _, err := c.Auth().Login(ctx, *email, *password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	fmt.Fprintln(out, "Logged in, token stored")
	return nil
}

func runLogout(ctx context.Context, c *client.Client, out io.Writer) error {
	if err := c.Auth().Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "Logged out")
	return nil
}

func runStatus(ctx context.Context, guard *session.Guard, out io.Writer) error {
	state := guard.Evaluate(ctx)
	fmt.Fprintf(out, "session: %s\n", state)
	return nil
}

// requireSession evaluates the route guard before a command that needs a
// bearer token runs. Each command invocation gets a fresh evaluation, the
// CLI's analogue of a page mount.
func requireSession(ctx context.Context, guard *session.Guard) error {
	if guard.Evaluate(ctx) != session.Authorized {
		return fmt.Errorf("no active session, run: admin login")
	}
	return nil
}

func runEvents(ctx context.Context, c *client.Client, guard *session.Guard, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("events subcommand required: list, create, delete")
	}
	repo := c.Events()

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("events list", flag.ContinueOnError)
		lang := fs.String("lang", string(i18n.Active()), "language (en or kn)")
		admin := fs.Bool("admin", false, "include unpublished events")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		opts := client.EventListOptions{Lang: i18n.Parse(*lang), Admin: *admin}
		lst := listsync.NewList(func(ctx context.Context) ([]entities.Event, error) {
			return repo.List(ctx, opts)
		})
		snap := lst.Refresh(ctx)
		if snap.Err != nil {
			return snap.Err
		}
		for _, e := range snap.Items {
			fmt.Fprintf(out, "%s  %s  %s\n", e.ID, e.Date, e.LocalTitle(opts.Lang))
		}
		fmt.Fprintf(out, "%d event(s)\n", len(snap.Items))
		return nil

	case "create":
		if err := requireSession(ctx, guard); err != nil {
			return err
		}
		fs := flag.NewFlagSet("events create", flag.ContinueOnError)
		var in entities.EventInput
		fs.StringVar(&in.Title, "title", "", "event title (required)")
		fs.StringVar(&in.TitleK, "title-k", "", "Kannada title")
		fs.StringVar(&in.Description, "desc", "", "description (required)")
		fs.StringVar(&in.DescriptionK, "desc-k", "", "Kannada description")
		fs.StringVar(&in.Date, "date", "", "event date, YYYY-MM-DD (required)")
		fs.StringVar(&in.EventTime, "time", "", "event time")
		fs.StringVar(&in.Location, "location", "", "venue")
		fs.StringVar(&in.Link, "link", "", "external link")
		image := fs.String("image", "", "path to poster image")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		att, closeAtt, err := openAttachment("image", *image)
		if err != nil {
			return err
		}
		defer closeAtt()

		created, err := repo.Create(ctx, in, att)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Created event %s\n", created.ID)
		return nil

	case "delete":
		if err := requireSession(ctx, guard); err != nil {
			return err
		}
		id, err := requireID(args[1:], "events delete")
		if err != nil {
			return err
		}
		if err := repo.Remove(ctx, id); err != nil {
			return err
		}
		fmt.Fprintln(out, "Event deleted")
		return nil
	}
	return fmt.Errorf("unknown events subcommand %q", args[0])
}

func runAnnouncements(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("announcements subcommand required: list, create, delete")
	}
	repo := c.Announcements()

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("announcements list", flag.ContinueOnError)
		lang := fs.String("lang", string(i18n.Active()), "language (en or kn)")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		l := i18n.Parse(*lang)
		lst := listsync.NewList(func(ctx context.Context) ([]entities.Announcement, error) {
			return repo.List(ctx, l)
		})
		snap := lst.Refresh(ctx)
		if snap.Err != nil {
			return snap.Err
		}
		for _, a := range snap.Items {
			fmt.Fprintf(out, "%s  %s\n", a.ID, a.LocalTitle(l))
		}
		fmt.Fprintf(out, "%d announcement(s)\n", len(snap.Items))
		return nil

	case "create":
		fs := flag.NewFlagSet("announcements create", flag.ContinueOnError)
		var in entities.AnnouncementInput
		fs.StringVar(&in.Title, "title", "", "title (required)")
		fs.StringVar(&in.TitleK, "title-k", "", "Kannada title")
		fs.StringVar(&in.Message, "message", "", "message (required)")
		fs.StringVar(&in.MessageK, "message-k", "", "Kannada message")
		fs.StringVar(&in.Link, "link", "", "external link")
		fs.StringVar(&in.Date, "date", "", "display date")
		media := fs.String("media", "", "path to media file")
		mediaType := fs.String("media-type", "image", "media type (image or video)")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		att, closeAtt, err := openAttachment("media", *media)
		if err != nil {
			return err
		}
		defer closeAtt()

		created, err := repo.Create(ctx, in, att, entities.MediaType(*mediaType))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Created announcement %s\n", created.ID)
		return nil

	case "delete":
		id, err := requireID(args[1:], "announcements delete")
		if err != nil {
			return err
		}
		if err := repo.Remove(ctx, id); err != nil {
			return err
		}
		fmt.Fprintln(out, "Announcement deleted")
		return nil
	}
	return fmt.Errorf("unknown announcements subcommand %q", args[0])
}

func runTeams(ctx context.Context, c *client.Client, guard *session.Guard, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("teams subcommand required: list, roster, create, reorder, delete")
	}
	repo := c.Teams()

	switch args[0] {
	case "list":
		lst := listsync.NewList(repo.List)
		snap := lst.Refresh(ctx)
		if snap.Err != nil {
			return snap.Err
		}
		for _, t := range snap.Items {
			fmt.Fprintf(out, "%s  #%d  %s\n", t.ID, t.Order, t.LocalName(i18n.Active()))
		}
		fmt.Fprintf(out, "%d team(s)\n", len(snap.Items))
		return nil

	case "roster":
		id, err := requireID(args[1:], "teams roster")
		if err != nil {
			return err
		}
		roster, err := repo.Roster(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n", roster.TeamName)
		for _, m := range roster.Heads {
			fmt.Fprintf(out, "  head    %s  %s\n", m.ID, m.Name)
		}
		for _, m := range roster.Members {
			fmt.Fprintf(out, "  member  %s  %s\n", m.ID, m.Name)
		}
		return nil

	case "create":
		if err := requireSession(ctx, guard); err != nil {
			return err
		}
		fs := flag.NewFlagSet("teams create", flag.ContinueOnError)
		var in entities.TeamInput
		fs.StringVar(&in.Name, "name", "", "team name (required)")
		fs.StringVar(&in.NameK, "name-k", "", "Kannada team name")
		fs.IntVar(&in.Order, "order", 0, "display position")
		photo := fs.String("photo", "", "path to team photo")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		att, closeAtt, err := openAttachment("team_photo", *photo)
		if err != nil {
			return err
		}
		defer closeAtt()

		created, err := repo.Create(ctx, in, att)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Created team %s\n", created.ID)
		return nil

	case "reorder":
		if err := requireSession(ctx, guard); err != nil {
			return err
		}
		fs := flag.NewFlagSet("teams reorder", flag.ContinueOnError)
		id := fs.String("id", "", "team ID (required)")
		order := fs.Int("order", 0, "new position")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("-id is required")
		}
		if err := repo.Reorder(ctx, *id, *order); err != nil {
			return err
		}
		fmt.Fprintln(out, "Team order updated")
		return nil

	case "delete":
		if err := requireSession(ctx, guard); err != nil {
			return err
		}
		id, err := requireID(args[1:], "teams delete")
		if err != nil {
			return err
		}
		if err := repo.Remove(ctx, id); err != nil {
			return err
		}
		fmt.Fprintln(out, "Team deleted")
		return nil
	}
	return fmt.Errorf("unknown teams subcommand %q", args[0])
}

func runMembers(ctx context.Context, c *client.Client, guard *session.Guard, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("members subcommand required: add, delete")
	}
	repo := c.Teams()

	switch args[0] {
	case "add":
		if err := requireSession(ctx, guard); err != nil {
			return err
		}
		fs := flag.NewFlagSet("members add", flag.ContinueOnError)
		teamID := fs.String("team", "", "team ID (required)")
		var in entities.MemberInput
		fs.StringVar(&in.Name, "name", "", "member name (required)")
		fs.StringVar(&in.Email, "email", "", "member email (required)")
		fs.StringVar(&in.Phone, "phone", "", "member phone (required)")
		role := fs.String("role", "member", "role (head or member)")
		image := fs.String("image", "", "path to portrait image")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *teamID == "" {
			return fmt.Errorf("-team is required")
		}
		in.Role = entities.MemberRole(*role)
		att, closeAtt, err := openAttachment("image", *image)
		if err != nil {
			return err
		}
		defer closeAtt()

		created, err := repo.AddMember(ctx, *teamID, in, att)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Added member %s\n", created.ID)
		return nil

	case "delete":
		if err := requireSession(ctx, guard); err != nil {
			return err
		}
		id, err := requireID(args[1:], "members delete")
		if err != nil {
			return err
		}
		if err := repo.RemoveMember(ctx, id); err != nil {
			return err
		}
		fmt.Fprintln(out, "Member deleted")
		return nil
	}
	return fmt.Errorf("unknown members subcommand %q", args[0])
}

func runGallery(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("gallery subcommand required: list, upload, delete")
	}
	repo := c.Gallery()

	switch args[0] {
	case "list":
		lst := listsync.NewList(repo.List)
		snap := lst.Refresh(ctx)
		if snap.Err != nil {
			return snap.Err
		}
		for _, g := range snap.Items {
			fmt.Fprintf(out, "%s  %s  %s\n", g.ID, g.MediaType, g.Title)
		}
		fmt.Fprintf(out, "%d item(s)\n", len(snap.Items))
		return nil

	case "upload":
		fs := flag.NewFlagSet("gallery upload", flag.ContinueOnError)
		var in entities.GalleryInput
		fs.StringVar(&in.Title, "desc", "", "description (required)")
		mediaType := fs.String("media-type", "image", "media type (image or video)")
		media := fs.String("media", "", "path to media file (required)")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *media == "" {
			return fmt.Errorf("-media is required")
		}
		in.MediaType = entities.MediaType(*mediaType)
		att, closeAtt, err := openAttachment("media", *media)
		if err != nil {
			return err
		}
		defer closeAtt()

		created, err := repo.Upload(ctx, in, *att)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Uploaded gallery item %s\n", created.ID)
		return nil

	case "delete":
		id, err := requireID(args[1:], "gallery delete")
		if err != nil {
			return err
		}
		if err := repo.Remove(ctx, id); err != nil {
			return err
		}
		fmt.Fprintln(out, "Gallery item deleted")
		return nil
	}
	return fmt.Errorf("unknown gallery subcommand %q", args[0])
}

func runContact(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("contact", flag.ContinueOnError)
	var in entities.ContactInput
	fs.StringVar(&in.Name, "name", "", "your name (required)")
	fs.StringVar(&in.Email, "email", "", "your email (required)")
	fs.StringVar(&in.Message, "message", "", "message (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.Contact().Send(ctx, in); err != nil {
		return err
	}
	fmt.Fprintln(out, "Message sent")
	return nil
}

func requireID(args []string, name string) (string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	id := fs.String("id", "", "entity ID (required)")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if *id == "" {
		return "", fmt.Errorf("-id is required")
	}
	return *id, nil
}

// openAttachment opens a local file as a multipart attachment. An empty path
// yields a nil attachment and a no-op closer.
func openAttachment(field, path string) (*client.Attachment, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return &client.Attachment{
		Field:    field,
		Filename: filepath.Base(path),
		Reader:   f,
	}, func() { f.Close() }, nil
}

func main() {
	if err := runAdmin(os.Args[1:], defaultAdminDeps()); err != nil {
		log.Fatal(err)
	}
}
