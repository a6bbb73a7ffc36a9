package sqlstore

import (
	"context"
	"testing"

	"github.com/dwikikusuma/storefront/internal/settings/app"
	"github.com/dwikikusuma/storefront/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsSeedAndUpdate(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenMemory(ctx)
	require.NoError(t, err)
	defer db.Close()

	svc := app.NewService(NewSettingsRepo(db))

	require.NoError(t, svc.Seed(ctx, app.Defaults))
	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "UNICORNKART LLC", all["website_name"])
	assert.Len(t, all, len(app.Defaults))

	updated, err := svc.Update(ctx, map[string]string{"website_name": "Toy Wonderland", "banner": "Sale!"})
	require.NoError(t, err)
	assert.Equal(t, "Toy Wonderland", updated["website_name"])
	assert.Equal(t, "Sale!", updated["banner"])

	// seeding again must not clobber edits
	require.NoError(t, svc.Seed(ctx, app.Defaults))
	all, err = svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Toy Wonderland", all["website_name"])

	_, err = svc.Update(ctx, map[string]string{"  ": "x"})
	assert.ErrorIs(t, err, app.ErrInvalidInput)
}
