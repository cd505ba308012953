// Package graph defines the GraphQL schema and resolvers for the dogbook
// catalog. Types mirror the public API contract; resolvers delegate to
// the core services and convert failures into the typed error envelope.
package graph

import (
	"time"

	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"

	"github.com/dogbook/dogbook-api/internal/api/metrics"
	"github.com/dogbook/dogbook-api/internal/auth"
	"github.com/dogbook/dogbook-api/internal/core/domain"
	"github.com/dogbook/dogbook-api/internal/core/ports"
)

// Resolver bundles the services behind the schema.
type Resolver struct {
	users  ports.UserService
	dogs   ports.DogService
	breeds ports.BreedService
	cookie CookieConfig
	logger zerolog.Logger
}

func NewResolver(users ports.UserService, dogs ports.DogService, breeds ports.BreedService, cookie CookieConfig, logger zerolog.Logger) *Resolver {
	return &Resolver{users: users, dogs: dogs, breeds: breeds, cookie: cookie, logger: logger}
}

// NewSchema builds the executable schema around r.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	tokenType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Token",
		Fields: graphql.Fields{
			"value": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":             &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"username":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"role":           &graphql.Field{Type: graphql.String},
			"fullName":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"profilePicture": &graphql.Field{Type: graphql.String},
			"bio":            &graphql.Field{Type: graphql.String},
			"country":        &graphql.Field{Type: graphql.String},
		},
	})

	breedType := graphql.NewObject(graphql.ObjectConfig{
		Name: "DogBreed",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"group":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"section":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"provisional": &graphql.Field{Type: graphql.String},
			"country":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"url":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"image":       &graphql.Field{Type: graphql.String},
			"pdf":         &graphql.Field{Type: graphql.String},
		},
	})

	dogType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Dog",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
			"url":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"image":       &graphql.Field{Type: graphql.String},
		},
	})

	// Relational fields are added after construction because the types
	// reference each other.
	dogType.AddFieldConfig("userId", &graphql.Field{
		Type: userType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			dog := dogSource(p)
			if dog == nil {
				return nil, nil
			}
			return r.users.Get(p.Context, dog.OwnerID)
		},
	})
	dogType.AddFieldConfig("breedId", &graphql.Field{
		Type: breedType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			dog := dogSource(p)
			if dog == nil {
				return nil, nil
			}
			return r.breeds.Get(p.Context, dog.BreedID)
		},
	})
	userType.AddFieldConfig("dogId", &graphql.Field{
		Type: graphql.NewList(dogType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			user := userSource(p)
			if user == nil {
				return nil, nil
			}
			return r.dogs.ListByOwner(p.Context, user.ID)
		},
	})
	breedType.AddFieldConfig("dogId", &graphql.Field{
		Type: graphql.NewList(dogType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			breed := breedSource(p)
			if breed == nil {
				return nil, nil
			}
			return r.dogs.ListByBreed(p.Context, breed.ID)
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hello": &graphql.Field{
				Type: graphql.String,
				Resolve: r.resolve("hello", func(graphql.ResolveParams) (interface{}, error) {
					return "Hello World!", nil
				}),
			},
			"userCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: r.resolve("userCount", func(p graphql.ResolveParams) (interface{}, error) {
					n, err := r.users.Count(p.Context)
					if err != nil {
						return nil, err
					}
					return int(n), nil
				}),
			},
			"users": &graphql.Field{
				Type: graphql.NewList(userType),
				Resolve: r.resolve("users", func(p graphql.ResolveParams) (interface{}, error) {
					return r.users.List(p.Context)
				}),
			},
			"singleUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: r.resolve("singleUser", func(p graphql.ResolveParams) (interface{}, error) {
					id := argString(p.Args, "userId")
					if id == "" {
						return nil, badUserInput("userId is required", "userId")
					}
					return r.users.Get(p.Context, id)
				}),
			},
			"me": &graphql.Field{
				Type: userType,
				Resolve: r.resolve("me", func(p graphql.ResolveParams) (interface{}, error) {
					user, ok := auth.PrincipalFrom(p.Context).User()
					if !ok {
						return nil, nil
					}
					return user, nil
				}),
			},
			"dogs": &graphql.Field{
				Type: graphql.NewList(dogType),
				Resolve: r.resolve("dogs", func(p graphql.ResolveParams) (interface{}, error) {
					return r.dogs.List(p.Context)
				}),
			},
			"dogBreeds": &graphql.Field{
				Type: graphql.NewList(breedType),
				Resolve: r.resolve("dogBreeds", func(p graphql.ResolveParams) (interface{}, error) {
					return r.breeds.List(p.Context)
				}),
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"email":          &graphql.ArgumentConfig{Type: graphql.String},
					"password":       &graphql.ArgumentConfig{Type: graphql.String},
					"username":       &graphql.ArgumentConfig{Type: graphql.String},
					"fullName":       &graphql.ArgumentConfig{Type: graphql.String},
					"role":           &graphql.ArgumentConfig{Type: graphql.String},
					"profilePicture": &graphql.ArgumentConfig{Type: graphql.String},
					"bio":            &graphql.ArgumentConfig{Type: graphql.String},
					"country":        &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolve("createUser", r.createUser),
			},
			"login": &graphql.Field{
				Type: tokenType,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.String},
					"password": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolve("login", r.login),
			},
			"createDog": &graphql.Field{
				Type: dogType,
				Args: graphql.FieldConfigArgument{
					"name":        &graphql.ArgumentConfig{Type: graphql.String},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
					"url":         &graphql.ArgumentConfig{Type: graphql.String},
					"image":       &graphql.ArgumentConfig{Type: graphql.String},
					"breedId":     &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: r.resolve("createDog", r.createDog),
			},
			"createDogBreed": &graphql.Field{
				Type: breedType,
				Args: graphql.FieldConfigArgument{
					"name":        &graphql.ArgumentConfig{Type: graphql.String},
					"group":       &graphql.ArgumentConfig{Type: graphql.String},
					"section":     &graphql.ArgumentConfig{Type: graphql.String},
					"provisional": &graphql.ArgumentConfig{Type: graphql.String},
					"country":     &graphql.ArgumentConfig{Type: graphql.String},
					"url":         &graphql.ArgumentConfig{Type: graphql.String},
					"image":       &graphql.ArgumentConfig{Type: graphql.String},
					"pdf":         &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolve("createDogBreed", r.createDogBreed),
			},
			"deleteDog": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: r.resolve("deleteDog", r.deleteDog),
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}

// resolve wraps a resolver with metrics and error-envelope conversion so
// every operation reports a typed error and consistent instrumentation.
func (r *Resolver) resolve(op string, fn graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		start := time.Now()
		out, err := fn(p)
		metrics.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

		if err != nil {
			re := wrapError(err)
			metrics.OperationsTotal.WithLabelValues(op, "error").Inc()
			metrics.OperationErrorsTotal.WithLabelValues(re.Code).Inc()
			if re.Code == CodeDatabaseError {
				r.logger.Error().Err(err).Str("operation", op).Msg("operation failed")
			}
			return nil, re
		}

		metrics.OperationsTotal.WithLabelValues(op, "ok").Inc()
		return out, nil
	}
}

func dogSource(p graphql.ResolveParams) *domain.Dog {
	switch v := p.Source.(type) {
	case *domain.Dog:
		return v
	case domain.Dog:
		return &v
	}
	return nil
}

func userSource(p graphql.ResolveParams) *domain.User {
	switch v := p.Source.(type) {
	case *domain.User:
		return v
	case domain.User:
		return &v
	}
	return nil
}

func breedSource(p graphql.ResolveParams) *domain.DogBreed {
	switch v := p.Source.(type) {
	case *domain.DogBreed:
		return v
	case domain.DogBreed:
		return &v
	}
	return nil
}
