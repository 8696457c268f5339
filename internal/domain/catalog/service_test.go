package catalog_test

import (
	"context"
	"errors"
	"testing"

	mem "pet-care-dashboard/internal/adapters/storage/memory"
	"pet-care-dashboard/internal/domain/catalog"
	"pet-care-dashboard/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cacheMock struct {
	mock.Mock
}

func (m *cacheMock) GetList(ctx context.Context, key string) ([]catalog.Product, bool, error) {
	args := m.Called(ctx, key)
	items, _ := args.Get(0).([]catalog.Product)
	return items, args.Bool(1), args.Error(2)
}

func (m *cacheMock) SetList(ctx context.Context, key string, items []catalog.Product) error {
	return m.Called(ctx, key, items).Error(0)
}

func (m *cacheMock) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func addProduct(t *testing.T, svc *catalog.Service, kind catalog.Kind, name string, inStock bool, types ...string) catalog.Product {
	t.Helper()
	p, err := svc.Add(context.Background(), catalog.AddInput{
		Kind:        kind,
		Name:        name,
		Price:       25.99,
		ForPetTypes: types,
		InStock:     inStock,
	})
	require.NoError(t, err)
	return p
}

func TestService_List_FiltersByKindPetTypeAndStock(t *testing.T) {
	svc := catalog.NewService(mem.NewCatalogRepo(), nil, nil)

	addProduct(t, svc, catalog.KindMedication, "Heartgard Plus", true, "Dog")
	addProduct(t, svc, catalog.KindMedication, "Frontline Plus", true, "Dog", "Cat")
	addProduct(t, svc, catalog.KindMedication, "Revolution", false, "Cat")
	addProduct(t, svc, catalog.KindVaccination, "Rabies Vaccine", true, "Dog", "Cat")

	ctx := context.Background()

	meds, err := svc.List(ctx, catalog.ListFilter{Kind: catalog.KindMedication})
	require.NoError(t, err)
	assert.Len(t, meds, 3)

	cats, err := svc.List(ctx, catalog.ListFilter{Kind: catalog.KindMedication, PetType: pets.PetTypeCat})
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Frontline Plus", cats[0].Name)
	assert.Equal(t, "Revolution", cats[1].Name)

	inStock := true
	catsInStock, err := svc.List(ctx, catalog.ListFilter{Kind: catalog.KindMedication, PetType: pets.PetTypeCat, InStock: &inStock})
	require.NoError(t, err)
	require.Len(t, catsInStock, 1)
	assert.Equal(t, "Frontline Plus", catsInStock[0].Name)

	birds, err := svc.List(ctx, catalog.ListFilter{Kind: catalog.KindMedication, PetType: pets.PetTypeBird})
	require.NoError(t, err)
	assert.Empty(t, birds)
}

func TestService_Add_Validation(t *testing.T) {
	svc := catalog.NewService(mem.NewCatalogRepo(), nil, nil)
	ctx := context.Background()

	cases := map[string]catalog.AddInput{
		"unknown kind":     {Kind: "toy", Name: "Ball", ForPetTypes: []string{"Dog"}},
		"missing name":     {Kind: catalog.KindMedication, ForPetTypes: []string{"Dog"}},
		"negative price":   {Kind: catalog.KindMedication, Name: "x", Price: -1, ForPetTypes: []string{"Dog"}},
		"no pet types":     {Kind: catalog.KindVaccination, Name: "x"},
		"unknown pet type": {Kind: catalog.KindVaccination, Name: "x", ForPetTypes: []string{"Dragon"}},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Add(ctx, in)
			assert.ErrorIs(t, err, catalog.ErrInvalidInput)
		})
	}

	all, err := svc.List(ctx, catalog.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestService_UpdateAndRemove(t *testing.T) {
	svc := catalog.NewService(mem.NewCatalogRepo(), nil, nil)
	ctx := context.Background()

	p := addProduct(t, svc, catalog.KindVaccination, "Leptospirosis Vaccine", false, "Dog")

	inStock := true
	price := 19.5
	updated, err := svc.Update(ctx, p.ID, catalog.UpdateInput{InStock: &inStock, Price: &price})
	require.NoError(t, err)
	assert.True(t, updated.InStock)
	assert.Equal(t, 19.5, updated.Price)
	assert.Equal(t, p.Name, updated.Name)

	_, err = svc.Update(ctx, "missing", catalog.UpdateInput{InStock: &inStock})
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	require.NoError(t, svc.Remove(ctx, p.ID))
	require.NoError(t, svc.Remove(ctx, p.ID))
	_, err = svc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestService_List_UsesCache(t *testing.T) {
	ctx := context.Background()
	filter := catalog.ListFilter{Kind: catalog.KindMedication}
	cached := []catalog.Product{{ID: "c1", Kind: catalog.KindMedication, Name: "Apoquel"}}

	cache := &cacheMock{}
	cache.On("GetList", ctx, filter.CacheKey()).Return(cached, true, nil).Once()

	svc := catalog.NewService(mem.NewCatalogRepo(), cache, nil)
	items, err := svc.List(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, cached, items)
	cache.AssertExpectations(t)
}

func TestService_List_CacheFailureFallsBackToRepo(t *testing.T) {
	ctx := context.Background()
	filter := catalog.ListFilter{Kind: catalog.KindVaccination}

	cache := &cacheMock{}
	cache.On("Invalidate", ctx).Return(nil)
	cache.On("GetList", ctx, filter.CacheKey()).Return(nil, false, errors.New("connection refused")).Once()
	cache.On("SetList", ctx, filter.CacheKey(), mock.AnythingOfType("[]catalog.Product")).Return(errors.New("connection refused")).Once()

	svc := catalog.NewService(mem.NewCatalogRepo(), cache, nil)
	addProduct(t, svc, catalog.KindVaccination, "DHPP Vaccine", true, "Dog")

	items, err := svc.List(ctx, filter)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "DHPP Vaccine", items[0].Name)
	cache.AssertExpectations(t)
}

func TestService_WritesInvalidateCache(t *testing.T) {
	ctx := context.Background()
	cache := &cacheMock{}
	cache.On("Invalidate", ctx).Return(nil).Times(3)

	svc := catalog.NewService(mem.NewCatalogRepo(), cache, nil)
	p := addProduct(t, svc, catalog.KindMedication, "Cosequin", true, "Dog", "Cat")

	name := "Cosequin DS"
	_, err := svc.Update(ctx, p.ID, catalog.UpdateInput{Name: &name})
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, p.ID))

	// borrar algo que ya no existe no invalida
	require.NoError(t, svc.Remove(ctx, p.ID))
	cache.AssertExpectations(t)
}
