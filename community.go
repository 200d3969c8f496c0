package community

// Version is the community release version.
const Version = "0.1.0"
