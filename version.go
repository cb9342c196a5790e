package parley

// Version is the current release of the Parley module.
const Version = "0.3.0"
