package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/storefeed/internal/database/testutil"
	"github.com/charlesng35/storefeed/internal/models"
)

func TestResolveLocale(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	require.NoError(t, db.Create(&models.Language{Code: "de", Name: "Deutsch", Active: true}).Error)

	svc, err := NewLanguageService(db)
	require.NoError(t, err)

	lang, err := svc.ResolveLocale(context.Background(), " DE ")
	require.NoError(t, err)
	require.Equal(t, "de", lang.Code)
}

func TestResolveLocaleUnknown(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())

	svc, err := NewLanguageService(db)
	require.NoError(t, err)

	_, err = svc.ResolveLocale(context.Background(), "xx")
	require.ErrorIs(t, err, ErrLanguageNotFound)
}

func TestResolveLocaleInactive(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	require.NoError(t, db.Create(&models.Language{Code: "fr", Name: "Français", Active: false}).Error)

	svc, err := NewLanguageService(db)
	require.NoError(t, err)

	_, err = svc.ResolveLocale(context.Background(), "fr")
	require.ErrorIs(t, err, ErrLanguageNotFound)
}

func TestDefaultLocale(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithSeedData())

	svc, err := NewLanguageService(db)
	require.NoError(t, err)

	lang, err := svc.DefaultLocale(context.Background())
	require.NoError(t, err)
	require.True(t, lang.IsDefault)
}

func TestDefaultLocaleMissing(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())

	svc, err := NewLanguageService(db)
	require.NoError(t, err)

	_, err = svc.DefaultLocale(context.Background())
	require.ErrorIs(t, err, ErrNoDefaultLanguage)
}
