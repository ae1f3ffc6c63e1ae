// Package notify defines the user-facing notification surface the engine
// reports asynchronous failures through: save errors, upload errors and the
// like appear as toasts. The engine calls the Notifier but does not depend
// on how notifications are rendered.
package notify
