// Package local provides the on-disk FileStore and a StorageWatcher
// backed by fsnotify.
package local
