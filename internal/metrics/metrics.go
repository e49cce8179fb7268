package metrics

const Namespace = "recordbox"
