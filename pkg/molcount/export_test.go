package molcount

var IsCompnd = isCompnd
var Count = count
