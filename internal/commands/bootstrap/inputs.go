package bootstrap

import (
	"fmt"
	"strings"

	"github.com/fxrates/fxprov/internal/cli"
	"github.com/fxrates/fxprov/internal/mongodb"
	"github.com/fxrates/fxprov/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

// set of bootstrap defaults matching the platform's compose environment
const (
	defaultUsername   = "fx_user"
	defaultRole       = "readWrite"
	defaultCollection = "exchange_rates"
)

type inputs struct {
	ServerURI   string
	Database    string
	Username    string
	Password    string
	Roles       []string
	Collections []string
}

func (i *inputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	deployment := profile.GetDeployment()

	if i.ServerURI == "" {
		i.ServerURI = deployment.ServerURI
	}
	if i.Database == "" {
		i.Database = deployment.AuthDatabase
	}

	if i.Password == "" {
		if err := ui.AskOne(
			&i.Password,
			&survey.Password{Message: fmt.Sprintf("Password for the %q user", i.Username)},
		); err != nil {
			return err
		}
	}
	return nil
}

func (i inputs) plan() (mongodb.Plan, error) {
	grants, err := parseGrants(i.Roles)
	if err != nil {
		return mongodb.Plan{}, err
	}

	return mongodb.Plan{
		Database: i.Database,
		User: mongodb.UserSpec{
			Username: i.Username,
			Password: i.Password,
			Grants:   grants,
		},
		Collections: i.Collections,
	}, nil
}

// parseGrants parses role grant flags of the form 'role' or 'role@db'.
// A grant without a database is scoped to the target database later,
// when the plan is validated.
func parseGrants(roles []string) ([]mongodb.RoleGrant, error) {
	grants := make([]mongodb.RoleGrant, 0, len(roles))
	for _, role := range roles {
		parts := strings.Split(role, "@")
		switch len(parts) {
		case 1:
			grants = append(grants, mongodb.RoleGrant{Role: parts[0]})
		case 2:
			if parts[0] == "" || parts[1] == "" {
				return nil, errInvalidGrant(role)
			}
			grants = append(grants, mongodb.RoleGrant{Role: parts[0], Database: parts[1]})
		default:
			return nil, errInvalidGrant(role)
		}
	}
	return grants, nil
}

func errInvalidGrant(role string) error {
	return fmt.Errorf("invalid role grant %q, use 'role' or 'role@db' instead", role)
}
