// Package services contains the business logic layer sitting between the
// HTTP handlers and the dataset packages. Services load dataset files from
// disk on every call so that edits to the CSVs show up on the next request
// without a restart.
package services
