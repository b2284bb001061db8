package gen

// Version of resource-swag.
const Version = "v0.1.0"
