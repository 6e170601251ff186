package cli

import (
	"flag"
	"fmt"
	"os"

	"bookcatalog/internal/config"
	"bookcatalog/internal/database"
	"bookcatalog/internal/database/books"
	"bookcatalog/internal/entities"
)

var sampleBooks = []entities.Book{
	{
		Title:       "Dune",
		ISBN:        "9780441013593",
		Author:      "Frank Herbert",
		Genre:       "Science Fiction",
		Description: "Paul Atreides and the desert planet Arrakis.",
		TotalPages:  412,
		Publisher:   "Ace",
		PublishYear: 1965,
	},
	{
		Title:       "The Left Hand of Darkness",
		ISBN:        "9780441478125",
		Author:      "Ursula K. Le Guin",
		Genre:       "Science Fiction",
		Description: "An envoy on the planet Gethen, where inhabitants have no fixed sex.",
		TotalPages:  304,
		Publisher:   "Ace",
		PublishYear: 1969,
	},
	{
		Title:       "The Name of the Rose",
		ISBN:        "9780156001311",
		Author:      "Umberto Eco",
		Genre:       "Mystery",
		Description: "A Franciscan friar investigates deaths in a medieval abbey.",
		TotalPages:  536,
		Publisher:   "Harcourt",
		PublishYear: 1980,
	},
}

// SeedCommand loads a small set of sample books into the configured database.
type SeedCommand struct {
	Verbose bool
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Insert sample books into the configured database.\n")
		fmt.Fprintf(os.Stderr, "Books whose ISBN is already present are skipped.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	cfg := config.NewConfig()

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := books.NewRepository(db.DB)

	created := 0
	for _, book := range sampleBooks {
		taken, err := repo.IsISBNTaken(book.ISBN, 0)
		if err != nil {
			return fmt.Errorf("failed to check ISBN %s: %w", book.ISBN, err)
		}
		if taken {
			if cmd.Verbose {
				fmt.Printf("Skipping %q: ISBN %s already present\n", book.Title, book.ISBN)
			}
			continue
		}

		if err := repo.CreateBook(&book); err != nil {
			return fmt.Errorf("failed to create %q: %w", book.Title, err)
		}
		created++
		if cmd.Verbose {
			fmt.Printf("Created %q (ISBN %s)\n", book.Title, book.ISBN)
		}
	}

	fmt.Printf("Seeded %d of %d books\n", created, len(sampleBooks))
	return nil
}
