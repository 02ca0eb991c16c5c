package model

import "github.com/jsphweid/stradella/chord"

type NotesResponse struct {
	Bass        []string `json:"bass"`
	Counterbass []string `json:"counterbass"`
}

type ChordsResponse struct {
	Chords []chord.Type `json:"chords"`
}

type CombinationsResponse struct {
	Root         string              `json:"root"`
	Type         string              `json:"type"`
	Total        int                 `json:"total"`
	Combinations []ButtonCombination `json:"combinations"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
