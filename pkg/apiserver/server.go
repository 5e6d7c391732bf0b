package apiserver

import (
	"fmt"
	"net/http"

	"github.com/deploywatch/deploywatch/pkg/apiserver/types"
	"github.com/deploywatch/deploywatch/pkg/buildversion"
	"github.com/deploywatch/deploywatch/pkg/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

func Serve(params types.APIServerParams) error {
	fmt.Printf("Starting deploywatch API version %s on port %s\n", buildversion.Version(), params.Port)

	r := mux.NewRouter()
	r.Use(handlers.ParamsMiddleware(params))

	handler := handlers.NewHandler()
	handlers.RegisterRoutes(r, handler)

	srv := &http.Server{
		Handler: r,
		Addr:    fmt.Sprintf(":%s", params.Port),
	}

	if err := srv.ListenAndServe(); err != nil {
		return errors.Wrap(err, "failed to listen and serve")
	}

	return nil
}
