// Package sync holds the orchestration contract between the local outline
// document, the remote task list and the snapshot of their last agreement.
package sync
