package internal

// Version is the current panlexicon release.
const Version = "0.3.0"
