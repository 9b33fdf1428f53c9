// Package prompt implements the interactive terminal selections for the add
// and edit commands. It only gathers already-validated values for the engine;
// no catalog mutation happens here.
package prompt

import (
	"fmt"
	"sort"

	"github.com/AlecAivazis/survey/v2"
)

// Library asks for an optional registry namespace. An empty answer means the
// default library of official images.
func Library() (string, error) {
	var library string

	question := &survey.Input{
		Message: "Library:",
		Help:    "Leave empty for official images",
	}
	if err := survey.AskOne(question, &library); err != nil {
		return "", fmt.Errorf("failed to prompt for library: %w", err)
	}

	return library, nil
}

// Name asks for the repository name; an answer is required.
func Name() (string, error) {
	var name string

	question := &survey.Input{Message: "Name:"}
	if err := survey.AskOne(question, &name, survey.WithValidator(survey.Required)); err != nil {
		return "", fmt.Errorf("failed to prompt for name: %w", err)
	}

	return name, nil
}

// SelectTags offers the registry's tag names for multi-selection, newest
// name first, with nothing pre-selected.
func SelectTags(available []string) ([]string, error) {
	options := make([]string, len(available))
	copy(options, available)
	sort.Sort(sort.Reverse(sort.StringSlice(options)))

	var selected []string

	question := &survey.MultiSelect{
		Message: "Please choose wanted tags:",
		Options: options,
	}
	if err := survey.AskOne(question, &selected); err != nil {
		return nil, fmt.Errorf("failed to prompt for tags: %w", err)
	}

	return selected, nil
}

// SelectProfile asks which tracked profile to edit.
func SelectProfile(keys []string) (string, error) {
	var choice string

	question := &survey.Select{
		Message: "Please choose profile to edit:",
		Options: keys,
	}
	if err := survey.AskOne(question, &choice); err != nil {
		return "", fmt.Errorf("failed to prompt for profile: %w", err)
	}

	return choice, nil
}

// ReduceTags offers the profile's current tags for multi-selection with all
// of them pre-selected; deselected tags are dropped from the profile.
func ReduceTags(current []string) ([]string, error) {
	var kept []string

	question := &survey.MultiSelect{
		Message: "Please choose tags to keep:",
		Options: current,
		Default: current,
	}
	if err := survey.AskOne(question, &kept); err != nil {
		return nil, fmt.Errorf("failed to prompt for tags to keep: %w", err)
	}

	return kept, nil
}
