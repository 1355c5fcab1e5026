package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/coursegen/coursegen"
	"github.com/coursegen/coursegen/sqlite"
	"golang.org/x/time/rate"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// aiRequestInterval paces calls to the completion API. One outline plus one
// quiz request per chapter adds up fast during ingestion.
const aiRequestInterval = 2 * time.Second

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CourseService  coursegen.CourseService
	ChapterService coursegen.ChapterService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("coursegen"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'coursegen --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set COURSEGEN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.CourseService = sqlite.NewCourseService(m.DB)
	m.ChapterService = sqlite.NewChapterService(m.DB)
	deps.DB = m.DB
	deps.Courses = m.CourseService
	deps.Chapters = m.ChapterService
	deps.Quizzes = sqlite.NewQuizService(m.DB)
	deps.Progress = sqlite.NewProgressService(m.DB)
	deps.Tokens = sqlite.NewTokenService(m.DB)
	deps.Limiter = rate.NewLimiter(rate.Every(aiRequestInterval), 1)

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("COURSEGEN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "coursegen.db"
	}
	dir := filepath.Join(home, ".coursegen")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "coursegen.db")
}
