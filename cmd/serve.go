package cmd

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/engrave/constants"
	"github.com/jsphweid/engrave/file"
	"github.com/jsphweid/engrave/logger"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/render"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

// maxDocument bounds the score documents accepted over http.
const maxDocument = 8 << 20

var serveOptions render.Options

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `Serves POST /render (a score document in, draw instructions out) and GET /instruments.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := renderOptions()
		cobra.CheckErr(err)
		serveOptions = opts
		logger.Info("listening", logger.Fields{"port": cfg.Port})
		cobra.CheckErr(http.ListenAndServe(":"+cfg.Port, Handler()))
	},
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("could not write response", err, nil)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

// HandleRender renders the score document in the request body. The flow
// query parameter picks one flow by key or title.
func HandleRender(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDocument))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s, err := file.Parse(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	opts := serveOptions
	if opts.PxPerMM == 0 {
		opts.PxPerMM = constants.PxPerMM
	}
	renders, err := Render(s, r.URL.Query().Get("flow"), opts)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, model.ErrInvariantViolation) {
			status = http.StatusUnprocessableEntity
		}
		logger.Error("render failed", err, logger.Fields{"remote": r.RemoteAddr})
		writeError(w, status, err)
		return
	}
	res := model.RenderResponse{Renders: make([]model.Render, 0, len(renders))}
	for _, rendered := range renders {
		res.Renders = append(res.Renders, *rendered)
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleInstruments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Instruments())
}

// Handler routes the API and allows browser front ends from any origin.
func Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/render", HandleRender).Methods("POST")
	router.HandleFunc("/instruments", HandleInstruments).Methods("GET")
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)
}
