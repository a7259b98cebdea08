package searcher

// Hyperparameters for opponent modelling

const BestProb = 0.8    // Mass committed to an opponent's locally best actions
const ScaredSpeed = 0.5 // Step length assumed for a fleeing opponent

// Tolerance on the total mass of a policy distribution
const distributionTolerance = 1e-9
