package postgres_test

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"pet-care-dashboard/internal/adapters/storage/postgres"
	"pet-care-dashboard/internal/domain/appointments"
	"pet-care-dashboard/internal/domain/catalog"
	"pet-care-dashboard/internal/domain/health"
	"pet-care-dashboard/internal/domain/medications"
	"pet-care-dashboard/internal/domain/pets"
	"pet-care-dashboard/internal/domain/screens"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *sql.DB {
	t.Helper()
	_ = godotenv.Load("../../../../.env")
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		t.Skip("DB_DSN not set")
	}

	db, err := postgres.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, postgres.Migrate(context.Background(), db))
	return db
}

func TestPetsRepo(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	svc := pets.NewService(postgres.NewPetsRepo(db))
	owner := "owner-" + uuid.NewString()

	bd := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	buddy, err := svc.Create(ctx, owner, pets.CreateInput{Name: "Buddy", Breed: "Golden Retriever", Age: 3, BirthDate: &bd})
	require.NoError(t, err)
	_, err = svc.Create(ctx, owner, pets.CreateInput{Name: "Bella", Breed: "Siamese", Age: 2, Type: "Cat"})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, buddy.ID)
	require.NoError(t, err)
	require.NotNil(t, got.BirthDate)
	assert.True(t, bd.Equal(*got.BirthDate))

	cats, err := svc.ListByOwner(ctx, owner, pets.ListFilter{Type: pets.PetTypeCat})
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Bella", cats[0].Name)

	found, err := svc.ListByOwner(ctx, owner, pets.ListFilter{Query: "golden"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	_, err = svc.Update(ctx, uuid.NewString(), pets.UpdateInput{})
	assert.ErrorIs(t, err, pets.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, buddy.ID))
	require.NoError(t, svc.Delete(ctx, buddy.ID))
}

func TestAppointmentsRepo(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	svc := appointments.NewService(postgres.NewAppointmentsRepo(db))
	owner := "owner-" + uuid.NewString()
	day := time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC)

	for _, hhmm := range []string{"3:45 PM", "10:30"} {
		_, err := svc.Book(ctx, owner, appointments.BookInput{
			Title: "Checkup " + hhmm, Date: day, Time: hhmm, Type: "Veterinary", PetName: "Max", Provider: "Dr. Smith",
		})
		require.NoError(t, err)
	}

	items, err := svc.List(ctx, owner, appointments.ListFilter{Date: &day})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "10:30", items[0].Time)
	assert.Equal(t, "15:45", items[1].Time)
}

func TestMedicationsRepo(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	svc := medications.NewService(postgres.NewMedicationsRepo(db))
	owner := "owner-" + uuid.NewString()

	m, err := svc.Add(ctx, owner, medications.AddInput{Name: "Antibiotics", Dosage: "10mg", Frequency: "Twice Daily", Times: "08:00,20:00"})
	require.NoError(t, err)

	given, err := svc.MarkGiven(ctx, m.ID)
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "20:00"}, got.Times)
	require.NotNil(t, got.LastGiven)
	assert.WithinDuration(t, *given.LastGiven, *got.LastGiven, time.Millisecond)

	inactive := false
	items, err := svc.List(ctx, owner, medications.ListFilter{Active: &inactive})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCatalogRepo(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	svc := catalog.NewService(postgres.NewCatalogRepo(db), nil, nil)
	name := "Frontline " + uuid.NewString()

	p, err := svc.Add(ctx, catalog.AddInput{
		Kind: catalog.KindMedication, Name: name, Price: 38.5, ForPetTypes: []string{"Dog", "Cat"}, InStock: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Remove(ctx, p.ID) })

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 38.5, got.Price)
	assert.Equal(t, []pets.PetType{pets.PetTypeDog, pets.PetTypeCat}, got.ForPetTypes)

	cats, err := svc.List(ctx, catalog.ListFilter{Kind: catalog.KindMedication, PetType: pets.PetTypeCat})
	require.NoError(t, err)
	ids := make([]string, 0, len(cats))
	for _, c := range cats {
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, p.ID)
}

func TestHealthRepo(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	svc := health.NewService(postgres.NewHealthRepo(db))
	petID := uuid.NewString()

	_, err := svc.AddRecord(ctx, petID, "owner-1", health.AddInput{
		Kind:       health.KindWeight,
		RecordedOn: time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
		Weight:     &health.WeightDetail{Value: 66.3, Unit: "lbs"},
	})
	require.NoError(t, err)
	_, err = svc.AddRecord(ctx, petID, "owner-1", health.AddInput{
		Kind:       health.KindExercise,
		RecordedOn: time.Date(2023, 6, 14, 0, 0, 0, 0, time.UTC),
		Exercise:   &health.ExerciseDetail{Activity: "Walk", DurationMinutes: 45, Intensity: health.IntensityModerate},
	})
	require.NoError(t, err)

	items, err := svc.ListByPet(ctx, petID, health.ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, health.KindExercise, items[0].Kind)
	require.NotNil(t, items[0].Exercise)
	assert.Equal(t, 45, items[0].Exercise.DurationMinutes)
	require.NotNil(t, items[1].Weight)
	assert.Equal(t, 66.3, items[1].Weight.Value)
}

func TestScreensRepo(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	repo := postgres.NewScreensRepo(db)
	owner := "owner-" + uuid.NewString()

	_, found, err := repo.Get(ctx, owner, screens.ScreenPets)
	require.NoError(t, err)
	assert.False(t, found)

	st := screens.State{Screen: screens.ScreenPets, SelectedID: "p1", OpenDialog: screens.DialogView, Filter: "Dog", UpdatedAt: time.Now().UTC()}
	require.NoError(t, repo.Save(ctx, owner, st))
	st.OpenDialog = screens.DialogEdit
	require.NoError(t, repo.Save(ctx, owner, st))

	got, found, err := repo.Get(ctx, owner, screens.ScreenPets)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "p1", got.SelectedID)
	assert.Equal(t, screens.DialogEdit, got.OpenDialog)
	assert.Equal(t, "Dog", got.Filter)
}
