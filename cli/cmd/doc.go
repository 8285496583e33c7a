package cmd

// CacheIdentifier is the kong variable identifier containing the path to
// the runtime cache directory (used by repl for its history file).
var CacheIdentifier = "cache"
