package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/controleponto/ponto/internal/config"
	"github.com/controleponto/ponto/internal/identity"
	"github.com/controleponto/ponto/internal/punch"
	"github.com/controleponto/ponto/internal/recognizer"
	"github.com/controleponto/ponto/internal/store"
)

// frameSize is the square frame edge the recognition model expects.
const frameSize = 400

var terminalCmd = &cobra.Command{
	Use:   "terminal",
	Short: "Run the clock-in terminal",
	Long: `Run the face-recognition clock-in terminal.
On each Enter press the terminal grabs a camera frame from the
recognition service, identifies the employee and appends a punch to the
attendance spreadsheet.`,
	RunE: runTerminal,
}

func init() {
	rootCmd.AddCommand(terminalCmd)

	terminalCmd.Flags().Bool("once", false, "Register a single punch and exit")
}

// recognizeOnce grabs one frame and resolves it to a registered user.
// Returns nil when nobody was recognized.
func recognizeOnce(ctx context.Context, client *recognizer.Client, users *identity.UserRepository) (*identity.User, error) {
	frame, err := client.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("grabbing frame: %w", err)
	}

	prepared, err := recognizer.PrepareFrame(frame, frameSize)
	if err != nil {
		return nil, fmt.Errorf("preparing frame: %w", err)
	}

	verdict, err := client.Recognize(ctx, prepared)
	if err != nil {
		return nil, fmt.Errorf("recognizing frame: %w", err)
	}
	if verdict.Confidence < 0 {
		return nil, nil
	}

	user, err := users.GetByID(ctx, verdict.ID)
	if err != nil {
		return nil, fmt.Errorf("looking up user %d: %w", verdict.ID, err)
	}
	return user, nil
}

func printUserCard(user *identity.User) {
	fmt.Printf("Nome:  %s\n", user.Nome)
	fmt.Printf("Cargo: %s\n", user.Cargo)
	fmt.Printf("Email: %s\n", user.Email)
	fmt.Printf("CPF:   %s\n", user.CPF)
}

func registerPunch(s *store.Store, user *identity.User) error {
	p := punch.Punch{
		Nome:      user.Nome,
		Cargo:     user.Cargo,
		Timestamp: time.Now(),
	}
	if err := s.Append(p); err != nil {
		return fmt.Errorf("recording punch: %w", err)
	}
	fmt.Printf("Ponto registrado: %s\n", p.Timestamp.Format(store.TimestampLayout))
	return nil
}

func runTerminal(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	once := mustGetBool(cmd, "once")

	if cfg.Recognizer.URL == "" {
		return errors.New("RECOGNIZER_URL environment variable is required")
	}

	client, err := recognizer.NewClient(cfg.Recognizer.URL)
	if err != nil {
		return err
	}

	db, err := identity.Open(cfg.Identity.Path)
	if err != nil {
		return fmt.Errorf("opening identity database: %w", err)
	}
	defer db.Close()
	if err := db.Migrate(context.Background()); err != nil {
		return fmt.Errorf("migrating identity database: %w", err)
	}
	users := identity.NewUserRepository(db)

	s := store.New(cfg.Store.Path)
	stdin := bufio.NewReader(os.Stdin)
	display := time.Duration(cfg.Recognizer.DisplaySeconds) * time.Second

	for {
		fmt.Println("Pressione Enter para registrar o ponto...")
		if _, err := stdin.ReadString('\n'); err != nil {
			// stdin closed, e.g. terminal unplugged
			return nil
		}

		user, err := recognizeOnce(context.Background(), client, users)
		if err != nil {
			fmt.Printf("Erro: %v\n", err)
		} else if user == nil {
			fmt.Println("Nenhum user encontrado")
		} else {
			printUserCard(user)
			if err := registerPunch(s, user); err != nil {
				fmt.Printf("Erro: %v\n", err)
			}
			time.Sleep(display)
		}

		if once {
			return nil
		}
	}
}
