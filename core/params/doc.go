// Package params implements the path-parameter parsing collaborator used by
// the routing core. Given the parameter definitions recorded at a matched
// route position and the raw segment values collected during traversal, it
// returns a map of parameter names to values converted per the type suffix
// of each definition's full token ("id:int", "token:uuid", ...).
//
// Supported types: str, int, float, uuid, date, datetime, duration. A token
// without a type suffix is treated as str.
//
// Wire it into a RouteMap with the WithParamParser option:
//
//	routes := routemap.New[handler.Handler](
//		routemap.WithParamParser[handler.Handler](params.Parse),
//	)
package params
