/*
Package covtest provides deterministic test doubles shared by covault
package tests.
*/
package covtest
