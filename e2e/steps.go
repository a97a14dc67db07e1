package e2e

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"strongroom/pkg/domain"
)

// RegisterSteps registers all step definitions.
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Background steps
	ctx.Step(`^the vault engine is running$`, tc.vaultEngineIsRunning)

	// Identity steps
	ctx.Step(`^I authenticate as the registry authority$`, tc.authenticateAsAuthority)
	ctx.Step(`^I authenticate as a fresh caller$`, tc.authenticateAsFreshCaller)

	// Vault steps
	ctx.Step(`^the authority creates a vault for a new owner$`, tc.authorityCreatesVault)
	ctx.Step(`^I create a vault for a new owner$`, tc.createVaultAsCaller)
	ctx.Step(`^I authenticate as the vault owner$`, tc.authenticateAsOwner)
	ctx.Step(`^I request the vault status$`, tc.requestVaultStatus)
	ctx.Step(`^I request the vault audit trail$`, tc.requestAuditTrail)
	ctx.Step(`^I mint "([^"]*)" pegged units to the owner$`, tc.mintToOwner)
	ctx.Step(`^I burn "([^"]*)" pegged units$`, tc.burnPegged)

	// Request steps
	ctx.Step(`^I GET "([^"]*)" without authorization$`, tc.getWithoutAuth)
	ctx.Step(`^I GET "([^"]*)"$`, tc.getPath)
	ctx.Step(`^I update the protocol mint fee to (\d+) basis points$`, tc.updateMintFee)

	// Assertion steps
	ctx.Step(`^the response status should be (\d+)$`, tc.responseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, tc.responseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should equal "([^"]*)"$`, tc.responseFieldShouldEqual)
}

func (tc *TestContext) vaultEngineIsRunning(ctx context.Context) error {
	if err := tc.GET("/health"); err != nil {
		return err
	}
	if tc.GetLastResponseStatus() != 200 {
		return fmt.Errorf("vault engine not healthy: status %d", tc.GetLastResponseStatus())
	}
	return nil
}

func (tc *TestContext) authenticateAsAuthority(ctx context.Context) error {
	if tc.Authority.IsNil() {
		return fmt.Errorf("AUTHORITY_ADDRESS must be set to the server's configured authority")
	}
	return tc.AuthenticateAs(tc.Authority)
}

func (tc *TestContext) authenticateAsFreshCaller(ctx context.Context) error {
	return tc.AuthenticateAs(domain.NewAddress())
}

func (tc *TestContext) authorityCreatesVault(ctx context.Context) error {
	if err := tc.authenticateAsAuthority(ctx); err != nil {
		return err
	}
	tc.Owner = domain.NewAddress()
	if err := tc.POST("/vaults", map[string]any{"owner": tc.Owner.String()}); err != nil {
		return err
	}
	if tc.GetLastResponseStatus() != 201 {
		return fmt.Errorf("vault creation failed: status %d body %s", tc.GetLastResponseStatus(), tc.LastResponseBody)
	}
	id, err := tc.GetResponseField("id")
	if err != nil {
		return err
	}
	tc.VaultID = id.(string)
	return nil
}

func (tc *TestContext) createVaultAsCaller(ctx context.Context) error {
	tc.Owner = domain.NewAddress()
	return tc.POST("/vaults", map[string]any{"owner": tc.Owner.String()})
}

func (tc *TestContext) authenticateAsOwner(ctx context.Context) error {
	if tc.Owner.IsNil() {
		return fmt.Errorf("no vault owner in scenario state")
	}
	return tc.AuthenticateAs(tc.Owner)
}

func (tc *TestContext) requestVaultStatus(ctx context.Context) error {
	return tc.GET("/vaults/" + tc.VaultID)
}

func (tc *TestContext) requestAuditTrail(ctx context.Context) error {
	return tc.GET("/vaults/" + tc.VaultID + "/audit")
}

func (tc *TestContext) mintToOwner(ctx context.Context, amount string) error {
	return tc.POST("/vaults/"+tc.VaultID+"/mint", map[string]any{
		"recipient": tc.Owner.String(),
		"amount":    amount,
	})
}

func (tc *TestContext) burnPegged(ctx context.Context, amount string) error {
	return tc.POST("/vaults/"+tc.VaultID+"/burn", map[string]any{
		"amount": amount,
	})
}

func (tc *TestContext) getWithoutAuth(ctx context.Context, path string) error {
	saved := tc.CallerToken
	tc.CallerToken = ""
	err := tc.GET(path)
	tc.CallerToken = saved
	return err
}

func (tc *TestContext) getPath(ctx context.Context, path string) error {
	return tc.GET(path)
}

func (tc *TestContext) updateMintFee(ctx context.Context, bps int) error {
	return tc.PUT("/admin/protocol", map[string]any{"mint_fee_rate": bps})
}

func (tc *TestContext) responseStatusShouldBe(ctx context.Context, expected int) error {
	if tc.GetLastResponseStatus() != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, tc.GetLastResponseStatus(), tc.LastResponseBody)
	}
	return nil
}

func (tc *TestContext) responseShouldContain(ctx context.Context, text string) error {
	if !tc.ResponseContains(text) {
		return fmt.Errorf("response does not contain %q: %s", text, tc.LastResponseBody)
	}
	return nil
}

func (tc *TestContext) responseFieldShouldEqual(ctx context.Context, field, expected string) error {
	value, err := tc.GetResponseField(field)
	if err != nil {
		return err
	}
	if fmt.Sprintf("%v", value) != expected {
		return fmt.Errorf("expected field %s to equal %q, got %v", field, expected, value)
	}
	return nil
}
