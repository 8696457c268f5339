package pets_test

import (
	"context"
	"testing"
	"time"

	mem "pet-care-dashboard/internal/adapters/storage/memory"
	"pet-care-dashboard/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const owner = "owner-1"

func seedPets(t *testing.T, svc *pets.Service) []pets.Pet {
	t.Helper()
	ctx := context.Background()

	inputs := []pets.CreateInput{
		{Name: "Buddy", Breed: "Golden Retriever", Age: 3, Type: "Dog", Weight: "65 lbs", Allergies: "Chicken"},
		{Name: "Bella", Breed: "Siamese Cat", Age: 2, Type: "Cat", Weight: "8 lbs"},
		{Name: "Charlie", Breed: "Beagle", Age: 4, Type: "Dog", SpecialNeeds: "Joint supplements"},
	}
	out := make([]pets.Pet, 0, len(inputs))
	for _, in := range inputs {
		p, err := svc.Create(ctx, owner, in)
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func list(t *testing.T, svc *pets.Service, f pets.ListFilter) []pets.Pet {
	t.Helper()
	items, err := svc.ListByOwner(context.Background(), owner, f)
	require.NoError(t, err)
	return items
}

func TestService_Create_AppendsExactlyOne(t *testing.T) {
	svc := pets.NewService(mem.NewPetRepo())
	seedPets(t, svc)
	before := len(list(t, svc, pets.ListFilter{}))

	p, err := svc.Create(context.Background(), owner, pets.CreateInput{Name: "Max", Breed: "Poodle"})
	require.NoError(t, err)

	assert.Len(t, list(t, svc, pets.ListFilter{}), before+1)
	assert.Equal(t, pets.PetTypeDog, p.Type, "type defaults to Dog")

	got, err := svc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestService_Create_RequiresNameAndBreed(t *testing.T) {
	svc := pets.NewService(mem.NewPetRepo())
	seedPets(t, svc)

	cases := []pets.CreateInput{
		{Name: "", Breed: "Beagle"},
		{Name: "Rex", Breed: "   "},
		{Name: "Rex", Breed: "Beagle", Age: -1},
		{Name: "Rex", Breed: "Beagle", Type: "Dragon"},
	}
	for _, in := range cases {
		_, err := svc.Create(context.Background(), owner, in)
		assert.ErrorIs(t, err, pets.ErrInvalidInput)
	}
	assert.Len(t, list(t, svc, pets.ListFilter{}), 3)
}

func TestService_Create_MintsDistinctIDs(t *testing.T) {
	svc := pets.NewService(mem.NewPetRepo())
	seedPets(t, svc)

	a, err := svc.Create(context.Background(), owner, pets.CreateInput{Name: "A", Breed: "x"})
	require.NoError(t, err)
	b, err := svc.Create(context.Background(), owner, pets.CreateInput{Name: "B", Breed: "x"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestService_Update_ReplacesOnlyMatchingPet(t *testing.T) {
	svc := pets.NewService(mem.NewPetRepo())
	seeded := seedPets(t, svc)

	name := "Bella Updated"
	age := 3
	updated, err := svc.Update(context.Background(), seeded[1].ID, pets.UpdateInput{Name: &name, Age: &age})
	require.NoError(t, err)
	assert.Equal(t, "Bella Updated", updated.Name)
	assert.Equal(t, 3, updated.Age)
	assert.Equal(t, "Siamese Cat", updated.Breed, "untouched fields keep their value")

	all := list(t, svc, pets.ListFilter{})
	require.Len(t, all, 3)
	assert.Equal(t, seeded[0], all[0])
	assert.Equal(t, updated, all[1])
	assert.Equal(t, seeded[2], all[2])
}

func TestService_Update_UnknownIDLeavesCollection(t *testing.T) {
	svc := pets.NewService(mem.NewPetRepo())
	seeded := seedPets(t, svc)

	name := "Ghost"
	_, err := svc.Update(context.Background(), "missing", pets.UpdateInput{Name: &name})
	assert.ErrorIs(t, err, pets.ErrNotFound)
	assert.Equal(t, seeded, list(t, svc, pets.ListFilter{}))
}

func TestService_Update_ClearsBirthDate(t *testing.T) {
	svc := pets.NewService(mem.NewPetRepo())
	bd := time.Date(2020, 5, 15, 0, 0, 0, 0, time.UTC)
	p, err := svc.Create(context.Background(), owner, pets.CreateInput{Name: "Buddy", Breed: "Golden", BirthDate: &bd})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), p.ID, pets.UpdateInput{BirthDate: pets.PatchDate{Present: true}})
	require.NoError(t, err)
	assert.Nil(t, updated.BirthDate)
}

func TestService_Delete_RemovesOneAndIsIdempotent(t *testing.T) {
	svc := pets.NewService(mem.NewPetRepo())
	seeded := seedPets(t, svc)

	require.NoError(t, svc.Delete(context.Background(), seeded[0].ID))
	assert.Len(t, list(t, svc, pets.ListFilter{}), 2)

	require.NoError(t, svc.Delete(context.Background(), seeded[0].ID))
	require.NoError(t, svc.Delete(context.Background(), "does-not-exist"))
	assert.Len(t, list(t, svc, pets.ListFilter{}), 2)
}

func TestService_List_FiltersByTypeAndQuery(t *testing.T) {
	svc := pets.NewService(mem.NewPetRepo())
	seedPets(t, svc)

	dogs := list(t, svc, pets.ListFilter{Type: pets.PetTypeDog})
	require.Len(t, dogs, 2)
	assert.Equal(t, "Buddy", dogs[0].Name)
	assert.Equal(t, "Charlie", dogs[1].Name)

	assert.Empty(t, list(t, svc, pets.ListFilter{Type: pets.PetTypeFish}))

	beagles := list(t, svc, pets.ListFilter{Query: "beag"})
	require.Len(t, beagles, 1)
	assert.Equal(t, "Charlie", beagles[0].Name)
}

func TestService_List_ScopedByOwner(t *testing.T) {
	svc := pets.NewService(mem.NewPetRepo())
	seedPets(t, svc)

	items, err := svc.ListByOwner(context.Background(), "someone-else", pets.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestParsePetType(t *testing.T) {
	got, ok := pets.ParsePetType(" cat ")
	assert.True(t, ok)
	assert.Equal(t, pets.PetTypeCat, got)

	_, ok = pets.ParsePetType("lizard")
	assert.False(t, ok)
}
