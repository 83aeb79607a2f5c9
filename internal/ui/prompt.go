package ui

import (
	"strings"

	"github.com/manifoldco/promptui"
)

// Confirm prompts the user for yes/no confirmation.
func Confirm(prompt string, defaultYes bool) (bool, error) {
	label := prompt
	if defaultYes {
		label += " [Y/n]"
	} else {
		label += " [y/N]"
	}

	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Default:   "",
	}

	if defaultYes {
		p.Default = "y"
	}

	result, err := p.Run()
	if err != nil {
		if err == promptui.ErrAbort {
			return false, nil
		}
		return defaultYes, nil // Return default on error
	}

	result = strings.ToLower(strings.TrimSpace(result))
	if result == "" {
		return defaultYes, nil
	}

	return result == "y" || result == "yes", nil
}

// SelectionInput prompts for an enumerated selection string, e.g. "1 3 5-7".
// An empty answer means no selection.
func SelectionInput() (string, error) {
	p := promptui.Prompt{
		Label: "Select candidates (e.g. 1 3 5-7)",
	}

	result, err := p.Run()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}
