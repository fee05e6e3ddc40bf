package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Dicklesworthstone/cats_viewer/pkg/loader"
	"github.com/Dicklesworthstone/cats_viewer/pkg/model"
	"github.com/Dicklesworthstone/cats_viewer/pkg/version"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var pickBreed bool

// breedsCmd lists the breeds of the current content
var breedsCmd = &cobra.Command{
	Use:   "breeds",
	Short: "List cat breeds",
	Long: `Prints every breed with its origin and personality.

With --pick, choose one breed interactively and print only its details.`,
	Args: cobra.NoArgs,
	RunE: runBreeds,
}

// versionCmd prints the version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	// No config or logger needed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}

func init() {
	breedsCmd.Flags().BoolVar(&pickBreed, "pick", false, "Pick a breed interactively")
}

func runBreeds(cmd *cobra.Command, args []string) error {
	content, err := loader.Resolve(cfg.ContentPath)
	if err != nil {
		return fmt.Errorf("cannot list breeds: %w", err)
	}
	out := cmd.OutOrStdout()

	if len(content.Breeds) == 0 {
		fmt.Fprintln(out, "No breeds listed.")
		return nil
	}

	if !pickBreed {
		return printBreeds(out, content.Breeds)
	}

	if !isTerminal(os.Stdin) {
		return errors.New("--pick needs an interactive terminal")
	}
	name, err := pick(content)
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	if err != nil {
		return err
	}
	b, ok := content.Breed(name)
	if !ok {
		return fmt.Errorf("unknown breed %q", name)
	}
	printBreedDetail(out, *b)
	return nil
}

func pick(content model.Content) (string, error) {
	var name string
	err := huh.NewSelect[string]().
		Title("Pick a breed").
		Options(huh.NewOptions(content.BreedNames()...)...).
		Value(&name).
		Run()
	return name, err
}

func printBreeds(out io.Writer, breeds []model.BreedInfo) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("BREED", "ORIGIN", "PERSONALITY")
	for _, b := range breeds {
		t.Row(b.Name, b.Origin, b.Personality)
	}
	_, err := fmt.Fprintln(out, t.String())
	return err
}

func printBreedDetail(out io.Writer, b model.BreedInfo) {
	fmt.Fprintln(out, b.Name)
	fmt.Fprintf(out, "  Origin:      %s\n", b.Origin)
	fmt.Fprintf(out, "  Personality: %s\n", b.Personality)
}
