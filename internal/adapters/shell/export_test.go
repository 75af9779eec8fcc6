package shell

var MergeEnvironment = mergeEnvironment
