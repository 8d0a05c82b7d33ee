package syncstore

import (
	"context"
	"strings"

	"github.com/classboard/classboard-api/pkg/client"
)

// classBackend adapts the API client to the Collection backend contract
// for classes.
type classBackend struct {
	api *client.Client
}

func (b classBackend) List(ctx context.Context) ([]client.ClassItem, error) {
	dash, err := b.api.LoadDashboard(ctx)
	if err != nil {
		return nil, err
	}
	return dash.Classes, nil
}

func (b classBackend) Create(ctx context.Context, input client.CreateClassInput) (*client.ClassItem, error) {
	return b.api.CreateClass(ctx, input)
}

func (b classBackend) Delete(ctx context.Context, id int64) error {
	_, err := b.api.DeleteClass(ctx, id)
	return err
}

// NewClassCollection builds the class mirror over the API client.
// confirm and onChange may be nil.
func NewClassCollection(api *client.Client, confirm func(client.ClassItem) bool, onChange func([]client.ClassItem)) *Collection[client.ClassItem, client.CreateClassInput] {
	return NewCollection(CollectionConfig[client.ClassItem, client.CreateClassInput]{
		Backend: classBackend{api: api},
		ID:      func(c client.ClassItem) int64 { return c.ID },
		Validate: func(input client.CreateClassInput) error {
			if strings.TrimSpace(input.Title) == "" {
				return client.NewClientValidation("title is required")
			}
			return nil
		},
		Confirm:  confirm,
		OnChange: onChange,
	})
}

// profileBackend adapts the API client to the Singleton contract for the
// teacher profile.
type profileBackend struct {
	api *client.Client
}

func (b profileBackend) Get(ctx context.Context) (*client.TeacherProfile, error) {
	return b.api.GetProfile(ctx)
}

func (b profileBackend) Update(ctx context.Context, patch client.ProfilePatch) (*client.TeacherProfile, error) {
	return b.api.UpdateProfile(ctx, patch)
}

// NewProfileSingleton builds the profile mirror over the API client.
func NewProfileSingleton(api *client.Client, onChange func(client.TeacherProfile)) *Singleton[client.TeacherProfile, client.ProfilePatch] {
	return NewSingleton[client.TeacherProfile, client.ProfilePatch](profileBackend{api: api}, onChange)
}
