package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pageza/recipeprep/backend/internal/grocery"
	"github.com/pageza/recipeprep/backend/internal/models"
	"github.com/pageza/recipeprep/backend/internal/service"
	"github.com/pageza/recipeprep/backend/internal/testhelpers"
	"github.com/pageza/recipeprep/backend/internal/types"
)

func newRecipeService(t *testing.T) (*service.RecipeService, *models.User) {
	t.Helper()
	db := testhelpers.SetupTestDatabase(t)
	return service.NewRecipeService(db, zaptest.NewLogger(t)), testhelpers.CreateTestUser(t, db)
}

func TestCreateRecipePrefersStructuredIngredients(t *testing.T) {
	svc, user := newRecipeService(t)
	ctx := context.Background()

	recipe, err := svc.CreateRecipe(ctx, user.ID, &types.CreateRecipeRequest{
		Name:           "Toast",
		Servings:       1,
		Ingredients:    []grocery.Ingredient{{Quantity: "2", Unit: "slice", Name: "bread"}},
		RawIngredients: []string{"2 slices bread", "butter"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.IngredientList{{Quantity: "2", Unit: "slice", Name: "bread"}}, recipe.Ingredients)
	assert.Equal(t, models.JSONBStringArray{"2 slices bread", "butter"}, recipe.RawIngredients)

	stored, err := svc.GetRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, recipe.Ingredients, stored.Ingredients)
	assert.Len(t, stored.CategoryProfile.Slice(), models.ProfileDimensions)
}

func TestCreateRecipeValidation(t *testing.T) {
	svc, user := newRecipeService(t)

	_, err := svc.CreateRecipe(context.Background(), user.ID, &types.CreateRecipeRequest{Name: "x", Servings: 0})
	assert.ErrorIs(t, err, service.ErrInvalidServings)
}

func TestUpdateRecipe(t *testing.T) {
	svc, user := newRecipeService(t)
	ctx := context.Background()
	recipe, err := svc.CreateRecipe(ctx, user.ID, &types.CreateRecipeRequest{
		Name: "Soup", Servings: 2, RawIngredients: []string{"1 onion"},
	})
	require.NoError(t, err)

	name := "Beef Soup"
	servings := 6
	updated, err := svc.UpdateRecipe(ctx, user.ID, recipe.ID, &types.UpdateRecipeRequest{
		Name:           &name,
		Servings:       &servings,
		RawIngredients: []string{"1 lb beef", "1 onion"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Beef Soup", updated.Name)
	assert.Equal(t, 6, updated.Servings)
	require.Len(t, updated.Ingredients, 2)
	assert.Equal(t, "lb", updated.Ingredients[0].Unit)

	zero := 0
	_, err = svc.UpdateRecipe(ctx, user.ID, recipe.ID, &types.UpdateRecipeRequest{Servings: &zero})
	assert.ErrorIs(t, err, service.ErrInvalidServings)

	_, err = svc.UpdateRecipe(ctx, uuid.New(), recipe.ID, &types.UpdateRecipeRequest{Name: &name})
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
}

func TestDeletedRecipesDisappearFromLookups(t *testing.T) {
	svc, user := newRecipeService(t)
	ctx := context.Background()
	keep, err := svc.CreateRecipe(ctx, user.ID, &types.CreateRecipeRequest{Name: "Keep", Servings: 1, RawIngredients: []string{"1 apple"}})
	require.NoError(t, err)
	drop, err := svc.CreateRecipe(ctx, user.ID, &types.CreateRecipeRequest{Name: "Drop", Servings: 1, RawIngredients: []string{"1 pear"}})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecipe(ctx, user.ID, drop.ID))
	assert.ErrorIs(t, svc.DeleteRecipe(ctx, user.ID, drop.ID), service.ErrRecipeNotFound)

	_, err = svc.GetRecipe(ctx, drop.ID)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)

	found, err := svc.RecipesByIDs(ctx, []uuid.UUID{keep.ID, drop.ID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, keep.ID, found[0].ID)

	list, err := svc.ListRecipes(ctx, user.ID, "")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSimilarRecipesRanksByProfile(t *testing.T) {
	svc, user := newRecipeService(t)
	ctx := context.Background()
	create := func(name string, lines ...string) *models.Recipe {
		r, err := svc.CreateRecipe(ctx, user.ID, &types.CreateRecipeRequest{Name: name, Servings: 2, RawIngredients: lines})
		require.NoError(t, err)
		return r
	}
	base := create("Omelette", "3 eggs", "1/4 cup milk", "1 tomato")
	close := create("Frittata", "6 eggs", "1/2 cup cream", "1 onion")
	far := create("Lemonade", "4 lemons", "1 cup water", "1/2 cup sugar")

	similar, err := svc.SimilarRecipes(ctx, base.ID, 10)
	require.NoError(t, err)
	require.Len(t, similar, 2)
	assert.Equal(t, close.ID, similar[0].ID)
	assert.Equal(t, far.ID, similar[1].ID)

	_, err = svc.SimilarRecipes(ctx, uuid.New(), 1)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
}

func TestImportRecipe(t *testing.T) {
	svc, user := newRecipeService(t)

	recipe, err := svc.ImportRecipe(context.Background(), user.ID, &types.ImportRecipeRequest{
		Name:         "<h1>Chili</h1>",
		Ingredients:  []string{"<li>1 lb <a href='#'>ground beef</a></li>", "", "<li>2 cans beans</li>"},
		Instructions: []string{"<p>Brown the beef.</p>", "<p></p>"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Chili", recipe.Name)
	assert.Equal(t, 1, recipe.Servings)
	assert.Equal(t, models.JSONBStringArray{"1 lb ground beef", "2 cans beans"}, recipe.RawIngredients)
	assert.Equal(t, models.JSONBStringArray{"Brown the beef."}, recipe.Instructions)
	assert.Equal(t, grocery.Ingredient{Quantity: "2", Unit: "cans", Name: "beans"}, recipe.Ingredients[1])
}
