package main

import "fmt"

// Run executes the token command.
func (c *TokenCmd) Run(deps *Dependencies) error {
	user, err := ensureUser(deps, c.Email)
	if err != nil {
		return err
	}

	token, err := deps.Tokens.CreateToken(deps.Ctx, user.ID)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, token)
	return nil
}
