package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hubsync/hubsync/internal/prompt"
)

// newEditCommand creates the edit subcommand, which interactively reduces a
// profile's tag set. Deselecting every tag removes the profile entirely.
func newEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit tracked images and tags in the catalog",
		RunE:  runEdit,
	}
}

// runEdit prompts for a profile and the subset of its tags to keep, then
// replaces the profile's tag set with the approved subset.
func runEdit(_ *cobra.Command, _ []string) error {
	keys := store.Keys()
	if len(keys) == 0 {
		logrus.Info("Catalog is empty, nothing to edit")

		return nil
	}

	choice, err := prompt.SelectProfile(keys)
	if err != nil {
		return err
	}

	// The choice came from the store's own key listing, so it is present.
	prof := store.Profiles[choice]

	kept, err := prompt.ReduceTags(prof.Tags)
	if err != nil {
		return err
	}

	if err := store.ReplaceTags(prof.Ref(), kept); err != nil {
		return err
	}

	if len(kept) == 0 {
		logrus.WithField("image", choice).Info("Removed profile with no remaining tags")
	} else {
		logrus.WithFields(logrus.Fields{
			"image": choice,
			"tags":  kept,
		}).Info("Updated profile tags")
	}

	return saveCatalog()
}
