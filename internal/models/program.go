package models

// Program is a catalog entry. Volume and ProgramType are parsed from the
// script name by convention (leading digits = volume, remainder = type code,
// e.g. "85adfire.py").
type Program struct {
	Name         string `json:"name"`
	Volume       int    `json:"volume"`
	ProgramType  string `json:"program_type"`
	ScriptExists bool   `json:"script_exists"`
}

// ProgramCatalog is the response of GET /programs.
type ProgramCatalog struct {
	Programs         []Program `json:"programs"`
	AvailableScripts []Program `json:"available_scripts"`
}

// Favorite is a named station/playlist known to the audio backend.
type Favorite struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}
