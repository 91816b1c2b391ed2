package appflow

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"

	"goflix/internal/session"
)

// runAccount signs the user in or out. The session is a local profile; no
// remote identity provider is involved.
func (a *App) runAccount() error {
	if a.Session.SignedIn() {
		if err := session.SignOut(a.DataDir); err != nil {
			return errors.Wrap(err, "sign out failed")
		}
		a.Session = nil
		fmt.Println(dimStyle.Render("Signed out."))
		return nil
	}

	prompt := promptui.Prompt{
		Label: "Display name",
		Validate: func(input string) error {
			if len(input) == 0 {
				return errors.New("display name is required")
			}
			return nil
		},
	}
	name, err := prompt.Run()
	if err != nil {
		return nil
	}

	s, err := session.SignIn(a.DataDir, name, "")
	if err != nil {
		return errors.Wrap(err, "sign in failed")
	}
	a.Session = s
	fmt.Println(okStyle.Render("✓ Signed in as " + s.DisplayName))
	return nil
}
