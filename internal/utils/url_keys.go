package utils

// IdParamKey is the key for the numeric event or todo id used in routing parameters.
const IdParamKey = "id"
