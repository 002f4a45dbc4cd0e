// Package settings loads tabular settings override files.
//
// A settings file declares one column per environment and one row per
// property:
//
//	environments: [DEV, BLD, ACC, PRD]
//	properties:
//	  ReceiveHost: [RxDev, RxBld, RxAcc, RxPrd]
//	  ArchiveFolder: [C:\Archive, ~, ~, \\prd\archive]
//
// Empty and null cells have no value. A Table bound to a deployment with
// ForDeployment serves environment.Deployment.Setting lookups.
package settings
