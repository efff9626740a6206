// Package services defines the shared error taxonomy for slicer components.
//
// Every external-tool and validation failure is tagged with one of the
// exported sentinel errors so the CLI can decide between aborting the run and
// continuing with the remaining segments without inspecting error strings.
package services
