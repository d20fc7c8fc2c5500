package curves

// Epsilon is the size of the pseudo-point substituted into a replicate
// column that ends with no real positives or no real negatives.
const Epsilon = 1e-10
