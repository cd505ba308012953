package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/dogbook/dogbook-api/internal/api/metrics"
	"github.com/dogbook/dogbook-api/internal/auth"
	"github.com/dogbook/dogbook-api/internal/core/ports"
)

func (r *Resolver) createUser(p graphql.ResolveParams) (interface{}, error) {
	input := createUserInput{
		Email:          argString(p.Args, "email"),
		Password:       argString(p.Args, "password"),
		Username:       argString(p.Args, "username"),
		FullName:       argString(p.Args, "fullName"),
		Role:           argString(p.Args, "role"),
		ProfilePicture: argString(p.Args, "profilePicture"),
		Bio:            argString(p.Args, "bio"),
		Country:        argString(p.Args, "country"),
	}
	if rerr := checkInput(input); rerr != nil {
		return nil, rerr
	}

	user, err := r.users.Create(p.Context, ports.CreateUserInput{
		Email:          input.Email,
		Password:       input.Password,
		Username:       input.Username,
		FullName:       input.FullName,
		Role:           input.Role,
		ProfilePicture: input.ProfilePicture,
		Bio:            input.Bio,
		Country:        input.Country,
	})
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(user.Role)).Inc()
	return user, nil
}

// login authenticates, sets the access-token cookie when the transport
// provides a response channel, and returns the access token value.
func (r *Resolver) login(p graphql.ResolveParams) (interface{}, error) {
	input := loginInput{
		Email:    argString(p.Args, "email"),
		Password: argString(p.Args, "password"),
	}
	if rerr := checkInput(input); rerr != nil {
		return nil, rerr
	}

	result, err := r.users.Login(p.Context, input.Email, input.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	if w, ok := cookieWriterFrom(p.Context); ok {
		w.SetCookie(r.cookie.accessCookie(result.AccessToken))
	}

	return map[string]interface{}{"value": result.AccessToken}, nil
}

func (r *Resolver) createDog(p graphql.ResolveParams) (interface{}, error) {
	if _, err := auth.RequireUser(p.Context); err != nil {
		return nil, err
	}

	input := createDogInput{
		Name:        argString(p.Args, "name"),
		Description: argString(p.Args, "description"),
		URL:         argString(p.Args, "url"),
		Image:       argString(p.Args, "image"),
		BreedID:     argString(p.Args, "breedId"),
	}
	if rerr := checkInput(input); rerr != nil {
		return nil, rerr
	}

	return r.dogs.Create(p.Context, ports.CreateDogInput{
		Name:        input.Name,
		Description: input.Description,
		URL:         input.URL,
		Image:       input.Image,
		BreedID:     input.BreedID,
	})
}

func (r *Resolver) createDogBreed(p graphql.ResolveParams) (interface{}, error) {
	if _, err := auth.RequireAdmin(p.Context); err != nil {
		return nil, err
	}

	input := createBreedInput{
		Name:        argString(p.Args, "name"),
		Group:       argString(p.Args, "group"),
		Section:     argString(p.Args, "section"),
		Provisional: argString(p.Args, "provisional"),
		Country:     argString(p.Args, "country"),
		URL:         argString(p.Args, "url"),
		Image:       argString(p.Args, "image"),
		PDF:         argString(p.Args, "pdf"),
	}
	if rerr := checkInput(input); rerr != nil {
		return nil, rerr
	}

	return r.breeds.Create(p.Context, ports.CreateBreedInput{
		Name:        input.Name,
		Group:       input.Group,
		Section:     input.Section,
		Provisional: input.Provisional,
		Country:     input.Country,
		URL:         input.URL,
		Image:       input.Image,
		PDF:         input.PDF,
	})
}

func (r *Resolver) deleteDog(p graphql.ResolveParams) (interface{}, error) {
	if _, err := auth.RequireAdmin(p.Context); err != nil {
		return nil, err
	}

	id := argString(p.Args, "id")
	if id == "" {
		return nil, badUserInput("id is required", "id")
	}
	return r.dogs.Delete(p.Context, id)
}
