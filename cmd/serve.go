package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/tmakinen/partwise/chunk"
	"github.com/tmakinen/partwise/constants"
	"github.com/tmakinen/partwise/db"
	"github.com/tmakinen/partwise/midifile"
	"github.com/tmakinen/partwise/model"
	"github.com/tmakinen/partwise/occurrence"
	"github.com/tmakinen/partwise/sample"
	"github.com/tmakinen/partwise/util"
)

var allChunks []model.ChunkOverview
var fileNumMap model.FileNumToPath

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves pattern searches",
	Long:  `Serves pattern searches over the built index.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// LoadServeFiles loads the chunk overview and file number map built by
// the index command.
func LoadServeFiles() {
	allChunks = util.ReadBinaryOrPanic[[]model.ChunkOverview](constants.AllChunksPath())
	fileNumMap = util.ReadBinaryOrPanic[model.FileNumToPath](constants.FileNumMapPath())
}

func findOccurrences(key string) []model.Occurrence {
	for _, c := range allChunks {
		if key >= c.Start && key <= c.End {
			path := filepath.Join(constants.GetIndexDir(), c.Filename)
			return chunk.FindOccurrences(path, key)
		}
	}
	return nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func attachMetadata(results []model.SearchResult) {
	if !constants.MetadataEnabled() {
		return
	}
	var filenames []string
	byName := make(map[string][]int)
	for i, r := range results {
		path, ok := fileNumMap[r.FileId]
		if !ok {
			continue
		}
		name := filepath.Base(path)
		if _, seen := byName[name]; !seen && len(filenames) < 10 {
			filenames = append(filenames, name)
		}
		byName[name] = append(byName[name], i)
	}
	for name, meta := range db.GetScoreMetadatas(filenames) {
		m := meta
		for _, i := range byName[name] {
			results[i].Metadata = &m
		}
	}
}

// HandleSearch answers a pattern search request. Exactly one of pitches
// (exact match) or intervals (transposition-invariant match) must be
// given, with a length matching the indexed window size.
func HandleSearch(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	var input model.SearchRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse request body: "+err.Error())
		return
	}

	var key string
	switch {
	case len(input.Pitches) > 0 && len(input.Intervals) > 0:
		writeError(w, http.StatusBadRequest, "give either pitches or intervals, not both")
		return
	case len(input.Pitches) > 0:
		if len(input.Pitches) != constants.PatternLength {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("pitch queries must have exactly %d pitches", constants.PatternLength))
			return
		}
		key = occurrence.ExactKey(input.Pitches)
	case len(input.Intervals) > 0:
		if len(input.Intervals) != constants.PatternLength-1 {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("interval queries must have exactly %d intervals", constants.PatternLength-1))
			return
		}
		key = occurrence.IntervalKeyOf(input.Intervals)
	default:
		writeError(w, http.StatusBadRequest, "empty query")
		return
	}

	matches := findOccurrences(key)
	results := make([]model.SearchResult, 0, len(matches))
	for _, occ := range matches {
		results = append(results, model.SearchResult{
			FileId:  occ.FileNum,
			Measure: occ.Measure,
			Voice:   occ.Voice,
			Index:   occ.Index,
		})
	}
	attachMetadata(results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.SearchResponse{
		NumMatches: len(results),
		Results:    results,
	})
}

// HandleSample streams a short MIDI excerpt starting at the matched
// measure of an indexed file.
func HandleSample(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fileId, err := strconv.ParseUint(vars["file"], 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad file id")
		return
	}
	measure, err := strconv.Atoi(vars["measure"])
	if err != nil || measure < 0 {
		writeError(w, http.StatusBadRequest, "bad measure number")
		return
	}
	path, ok := fileNumMap[uint32(fileId)]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown file id")
		return
	}
	score, err := midifile.ReadFile(path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not read file: "+err.Error())
		return
	}
	mf, err := sample.Excerpt(score, measure)
	if err != nil {
		writeError(w, http.StatusNotFound, "could not build excerpt: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	if _, err := mf.WriteTo(w); err != nil {
		log.Printf("writing sample failed: %v", err)
	}
}

func serve() {
	LoadServeFiles()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/search", HandleSearch).Methods("POST")
	router.HandleFunc("/sample/{file}/{measure}", HandleSample).Methods("GET")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
