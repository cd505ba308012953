package handler

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"

	"github.com/dogbook/dogbook-api/internal/api/graph"
)

// GraphQLHandler serves the single /graphql endpoint. All operation-level
// errors travel inside the GraphQL response envelope; only transport
// failures (bad JSON, missing query) surface as HTTP errors.
type GraphQLHandler struct {
	schema graphql.Schema
}

func NewGraphQLHandler(schema graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

type graphqlRequest struct {
	Query         string                 `json:"query" validate:"required"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// echoCookieWriter exposes the response channel to the login resolver.
type echoCookieWriter struct {
	c echo.Context
}

func (w echoCookieWriter) SetCookie(cookie *http.Cookie) {
	w.c.SetCookie(cookie)
}

func (h *GraphQLHandler) Query(c echo.Context) error {
	var req graphqlRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := graph.WithCookieWriter(c.Request().Context(), echoCookieWriter{c: c})

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	})

	return c.JSON(http.StatusOK, result)
}
