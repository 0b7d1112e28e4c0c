package store

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobe-service/models"
)

// testDesign builds a valid design for designerID
func testDesign(designerID int64, title string) models.Design {
	return models.Design{
		Title:       title,
		Description: title + " description",
		Price:       49.5,
		Category:    "outerwear",
		ImageFile:   title + ".png",
		DesignerID:  designerID,
	}
}

func TestAddDesign(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	designerID, err := s.InsertDesigner(ctx, "Dana", "d@x.com", "pw", "D-1")
	require.NoError(t, err)

	id, err := s.AddDesign(ctx, testDesign(designerID, "coat"))
	require.NoError(t, err)

	designs, err := s.GetDesignsByDesigner(ctx, designerID)
	require.NoError(t, err)
	require.Len(t, designs, 1)
	assert.Equal(t, models.Design{
		ID:          id,
		Title:       "coat",
		Description: "coat description",
		Price:       49.5,
		Category:    "outerwear",
		ImageFile:   "coat.png",
		DesignerID:  designerID,
	}, designs[0])
}

func TestAddDesignAllowsFreeDesign(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	designerID, err := s.InsertDesigner(ctx, "Dana", "d@x.com", "pw", "D-1")
	require.NoError(t, err)

	d := testDesign(designerID, "sample")
	d.Price = 0
	_, err = s.AddDesign(ctx, d)
	require.NoError(t, err)
}

func TestAddDesignRejects(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	designerID, err := s.InsertDesigner(ctx, "Dana", "d@x.com", "pw", "D-1")
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*models.Design)
		want   error
	}{
		{"negative price", func(d *models.Design) { d.Price = -1 }, ErrInvalidInput},
		{"NaN price", func(d *models.Design) { d.Price = math.NaN() }, ErrInvalidInput},
		{"unknown designer", func(d *models.Design) { d.DesignerID = designerID + 10 }, ErrInvalidReference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDesign(designerID, "coat")
			tt.mutate(&d)
			_, err := s.AddDesign(ctx, d)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Equal(t, 0, countRows(t, s, "designs"))
}

func TestListAndDeleteDesigns(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a, err := s.InsertDesigner(ctx, "A", "a@x.com", "pw", "A-1")
	require.NoError(t, err)
	b, err := s.InsertDesigner(ctx, "B", "b@x.com", "pw", "B-1")
	require.NoError(t, err)

	first, err := s.AddDesign(ctx, testDesign(a, "coat"))
	require.NoError(t, err)
	_, err = s.AddDesign(ctx, testDesign(b, "dress"))
	require.NoError(t, err)

	all, err := s.ListAllDesigns(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	n, err := s.DeleteDesign(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = s.DeleteDesign(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	all, err = s.ListAllDesigns(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, b, all[0].DesignerID)
}
