package hepquery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColumnsForPhysicsObjects(t *testing.T) {
	columns := []string{
		"run", "luminosityBlock", "event",
		"nElectron", "Electron_pt", "Electron_eta", "Electron_phi",
		"nMuon", "Muon_pt", "Muon_eta",
		"nTau", "Tau_pt",
	}
	got := ColumnsForPhysicsObjects([]string{"Electron", "Muon"}, columns)
	require.Equal(t, []string{
		"nElectron", "Electron_pt", "Electron_eta", "Electron_phi",
		"nMuon", "Muon_pt", "Muon_eta",
	}, got)
}

func TestColumnsForPhysicsObjectsNoObjects(t *testing.T) {
	require.Empty(t, ColumnsForPhysicsObjects(nil, []string{"nElectron", "Electron_pt"}))
}

func TestColumnsForPhysicsObjectsNoDuplicates(t *testing.T) {
	got := ColumnsForPhysicsObjects([]string{"Electron", "Electron"}, []string{"nElectron", "Electron_pt"})
	require.Equal(t, []string{"nElectron", "Electron_pt"}, got)
}

func TestColumnsForPhysicsObjectsEscaping(t *testing.T) {
	// a dotted object name must not match as a regex wildcard
	columns := []string{"nJetAK8", "JetAK8_pt", "nJet.K8", "Jet.K8_pt", "JetXK8_pt"}
	got := ColumnsForPhysicsObjects([]string{"Jet.K8"}, columns)
	require.Equal(t, []string{"nJet.K8", "Jet.K8_pt"}, got)
}

func TestColumnsForPhysicsObjectsNoPrefixMatch(t *testing.T) {
	// "Electron" must not pick up "ElectronVeto" properties or similar
	columns := []string{"nElectronVeto", "ElectronVeto_pt", "nElectron", "Electron_pt", "Electron"}
	got := ColumnsForPhysicsObjects([]string{"Electron"}, columns)
	require.Equal(t, []string{"nElectron", "Electron_pt"}, got)
}

func TestCountColumnForPhysicsObject(t *testing.T) {
	require.Equal(t, "nElectron", CountColumnForPhysicsObject("Electron"))
}
