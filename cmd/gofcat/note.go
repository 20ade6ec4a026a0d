package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gofcatalog/gofcat/internal/notes"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage personal study notes on patterns",
}

var noteAddCmd = &cobra.Command{
	Use:   "add <pattern> <text...>",
	Short: "Attach a note to a pattern",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runNoteAdd,
}

var noteListCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List notes, optionally for one pattern",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNoteList,
}

var noteRmCmd = &cobra.Command{
	Use:   "rm <note-id>",
	Short: "Delete a note by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteRm,
}

func init() {
	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteRmCmd)
}

func openNotes() (*notes.Store, error) {
	return notes.Open(cfg.Notes.Path, logger)
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	// Notes hang off real catalogue entries only
	name := args[0]
	if _, found := c.FindByName(name); !found {
		return notFoundError(c, name)
	}

	store, err := openNotes()
	if err != nil {
		return err
	}
	defer store.Close()

	note, err := store.Add(name, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	fmt.Printf("Saved note %s on %s\n", note.ID, note.Pattern)
	return nil
}

func runNoteList(cmd *cobra.Command, args []string) error {
	store, err := openNotes()
	if err != nil {
		return err
	}
	defer store.Close()

	var list []notes.Note
	if len(args) == 1 {
		list, err = store.ListForPattern(args[0])
	} else {
		list, err = store.ListAll()
	}
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Println("No notes saved")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPATTERN\tCREATED\tNOTE")
	for _, n := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", n.ID, n.Pattern, n.CreatedAt.Format("2006-01-02"), n.Text)
	}
	return tw.Flush()
}

func runNoteRm(cmd *cobra.Command, args []string) error {
	store, err := openNotes()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(args[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted note %s\n", args[0])
	return nil
}
