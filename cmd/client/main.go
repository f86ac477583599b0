package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/challengehub/challengehub-backend/internal/client"
	"github.com/challengehub/challengehub-backend/internal/client/session"
)

const usage = `usage: challengehub-client [-server URL] <command>

commands:
  login              log in and save the session
  challenges [id]    list challenges, or show one
  create             post a new challenge (requires login)
  logout             clear the saved session
`

func main() {
	server := flag.String("server", "http://localhost:8080", "API server base URL")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "session store:", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	api := client.New(*server)

	var cmdErr error
	switch flag.Arg(0) {
	case "login":
		cmdErr = runLogin(ctx, api, store)
	case "challenges":
		cmdErr = runChallenges(ctx, api, store, flag.Arg(1))
	case "create":
		cmdErr = runCreate(ctx, api, store)
	case "logout":
		cmdErr = store.Clear(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if cmdErr != nil {
		fmt.Fprintln(os.Stderr, "error:", cmdErr)
		os.Exit(1)
	}
}

func openStore() (*session.Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".challengehub")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return session.Open(filepath.Join(dir, "session.db"))
}

func runLogin(ctx context.Context, api *client.Client, store *session.Store) error {
	in := bufio.NewReader(os.Stdin)

	fmt.Print("Email: ")
	email, err := in.ReadString('\n')
	if err != nil {
		return err
	}

	fmt.Print("Password: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return err
	}

	res, err := api.Login(ctx, strings.TrimSpace(email), string(pw))
	if err != nil {
		// server message shown as-is
		return err
	}
	if err := store.Save(ctx, res.Token, res.RefreshToken, res.User.Role); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", res.User.Name, res.User.Role)
	fmt.Println("->", landingRoute(res.User.Role))
	return nil
}

// developers land on the freelancer profile, everyone else on the client one
func landingRoute(role string) string {
	if role == "developer" {
		return "/freelancer/profile"
	}
	return "/client/profile"
}

func withToken(ctx context.Context, api *client.Client, store *session.Store) error {
	tok, err := store.Token(ctx)
	if err != nil {
		return err
	}
	api.SetToken(tok)
	return nil
}

func runChallenges(ctx context.Context, api *client.Client, store *session.Store, id string) error {
	// listing and reading are public; send the token if we have one
	_ = withToken(ctx, api, store)

	if id != "" {
		c, err := api.GetChallenge(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n  prize: %d\n  by:    %s\n  %s\n", c.Title, c.Prize, c.CreatedBy, c.Description)
		return nil
	}

	all, err := api.ListChallenges(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("no challenges yet")
		return nil
	}
	for _, c := range all {
		fmt.Printf("%s  %-30s  prize=%d\n", c.ID, c.Title, c.Prize)
	}
	return nil
}

func runCreate(ctx context.Context, api *client.Client, store *session.Store) error {
	if err := withToken(ctx, api, store); err != nil {
		return fmt.Errorf("log in first: %w", err)
	}

	in := bufio.NewReader(os.Stdin)
	fmt.Print("Title: ")
	title, _ := in.ReadString('\n')
	fmt.Print("Description: ")
	desc, _ := in.ReadString('\n')
	fmt.Print("Prize: ")
	var prize int64
	if _, err := fmt.Fscan(in, &prize); err != nil {
		return fmt.Errorf("invalid prize: %w", err)
	}

	c, err := api.CreateChallenge(ctx, strings.TrimSpace(title), strings.TrimSpace(desc), prize)
	if err != nil {
		return err
	}
	fmt.Println("created", c.ID)
	return nil
}
