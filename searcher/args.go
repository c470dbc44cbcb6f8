package searcher

// Hyperparameters for MCTS

const DefaultExploration = 1.41421356237 // Exploration constant c, about sqrt(2)

const DefaultSeed = 1
