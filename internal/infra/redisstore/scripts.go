package redisstore

import "github.com/redis/go-redis/v9"

// KEYS: stock, total, pool, holders, sold
// ARGV: overwrite (0|1), capacity, unit...
// Returns the seeded remaining count, or -1 when already seeded and overwrite is 0.
var seedScript = redis.NewScript(`
if ARGV[1] == '0' and redis.call('EXISTS', KEYS[2]) == 1 then
  return -1
end
redis.call('DEL', KEYS[3])
for i = 3, #ARGV do
  local unit = ARGV[i]
  if redis.call('HEXISTS', KEYS[4], unit) == 0 and redis.call('SISMEMBER', KEYS[5], unit) == 0 then
    redis.call('SADD', KEYS[3], unit)
  end
end
local n = redis.call('SCARD', KEYS[3])
redis.call('SET', KEYS[1], n)
redis.call('SET', KEYS[2], ARGV[2])
return n
`)

// KEYS: stock, pool, holders
// ARGV: session
// Returns the claimed unit id, or nil when sold out.
var decrementScript = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then
  return redis.error_reply('SALE_NOT_OPEN')
end
local count = tonumber(raw)
if count < 0 then
  return redis.error_reply('NEGATIVE_STOCK count=' .. count)
end
if count == 0 then
  return false
end
local unit = redis.call('SPOP', KEYS[2])
if not unit then
  return redis.error_reply('STOCK_POOL_EMPTY count=' .. count)
end
if redis.call('HSETNX', KEYS[3], unit, ARGV[1]) == 0 then
  redis.call('SADD', KEYS[2], unit)
  return redis.error_reply('UNIT_ALREADY_HELD unit=' .. unit)
end
redis.call('DECR', KEYS[1])
return unit
`)

// KEYS: stock, total, pool, holders
// ARGV: unit, session
// Returns {restored, remaining, total}. Only the holding session can restore a unit.
var restoreScript = redis.NewScript(`
local total = tonumber(redis.call('GET', KEYS[2]) or '0')
if redis.call('HGET', KEYS[4], ARGV[1]) ~= ARGV[2] then
  return {0, tonumber(redis.call('GET', KEYS[1]) or '0'), total}
end
redis.call('HDEL', KEYS[4], ARGV[1])
redis.call('SADD', KEYS[3], ARGV[1])
local n = redis.call('INCR', KEYS[1])
return {1, n, total}
`)

// KEYS: waiting, cursor, grants, enqueued, arrivals, buyers, purchasers
// ARGV: buyer, ms
// Returns {state, rank, cursor}; state 0 new, 1 refreshed, 2 already granted,
// 3 holds a reservation, 4 already purchased. Scores are ms followed by three
// digits of arrival sequence, so equal milliseconds keep arrival order.
var enqueueScript = redis.NewScript(`
local cursor = tonumber(redis.call('GET', KEYS[2]) or '0')
if redis.call('SISMEMBER', KEYS[7], ARGV[1]) == 1 then
  return {4, -1, cursor}
end
if redis.call('HEXISTS', KEYS[6], ARGV[1]) == 1 then
  return {3, -1, cursor}
end
local granted = redis.call('HGET', KEYS[3], ARGV[1])
if granted then
  return {2, tonumber(granted), cursor}
end
local state = 0
if redis.call('ZSCORE', KEYS[1], ARGV[1]) then
  state = 1
else
  redis.call('INCR', KEYS[4])
end
local seq = redis.call('INCR', KEYS[5]) % 1000
redis.call('ZADD', KEYS[1], ARGV[2] .. string.format('%03d', seq), ARGV[1])
return {state, cursor + redis.call('ZRANK', KEYS[1], ARGV[1]), cursor}
`)

// KEYS: waiting, cursor, grants
// ARGV: buyer
// Returns {state, rank, cursor}; state 0 waiting, 2 granted, -1 absent.
// ZRANK orders like ZPOPMIN, so the rank is the eviction order.
var rankScript = redis.NewScript(`
local cursor = tonumber(redis.call('GET', KEYS[2]) or '0')
local granted = redis.call('HGET', KEYS[3], ARGV[1])
if granted then
  return {2, tonumber(granted), cursor}
end
local rank = redis.call('ZRANK', KEYS[1], ARGV[1])
if not rank then
  return {-1, -1, cursor}
end
return {0, cursor + rank, cursor}
`)

// KEYS: waiting, cursor, grants, grantedAt, enqueued
// ARGV: n, now
// Pops the first n entries into grants and returns
// {cursor, admitted, still waiting, ever enqueued}.
var advanceScript = redis.NewScript(`
local cursor = tonumber(redis.call('GET', KEYS[2]) or '0')
local n = tonumber(ARGV[1])
local admitted = 0
if n > 0 then
  local popped = redis.call('ZPOPMIN', KEYS[1], n)
  for i = 1, #popped, 2 do
    redis.call('HSET', KEYS[3], popped[i], cursor + admitted)
    redis.call('ZADD', KEYS[4], ARGV[2], popped[i])
    admitted = admitted + 1
  end
  cursor = cursor + admitted
  redis.call('SET', KEYS[2], cursor)
end
local enqueued = tonumber(redis.call('GET', KEYS[5]) or '0')
return {cursor, admitted, redis.call('ZCARD', KEYS[1]), enqueued}
`)

// KEYS: grants, grantedAt
// ARGV: cutoff
var expireGrantsScript = redis.NewScript(`
local stale = redis.call('ZRANGEBYSCORE', KEYS[2], '-inf', ARGV[1])
for _, buyer in ipairs(stale) do
  redis.call('HDEL', KEYS[1], buyer)
end
if #stale > 0 then
  redis.call('ZREMRANGEBYSCORE', KEYS[2], '-inf', ARGV[1])
end
return #stale
`)

// KEYS: buyers, purchasers
// ARGV: buyer, session
// Returns 0 when the slot was claimed for session, 1 when the buyer already
// holds a reservation, 2 when the buyer already purchased.
var claimBuyerScript = redis.NewScript(`
if redis.call('SISMEMBER', KEYS[2], ARGV[1]) == 1 then
  return 2
end
if redis.call('HSETNX', KEYS[1], ARGV[1], ARGV[2]) == 0 then
  return 1
end
return 0
`)

// KEYS: buyers, purchasers
// ARGV: buyer
var standingScript = redis.NewScript(`
if redis.call('SISMEMBER', KEYS[2], ARGV[1]) == 1 then
  return 2
end
if redis.call('HEXISTS', KEYS[1], ARGV[1]) == 1 then
  return 1
end
return 0
`)

// KEYS: buyers
// ARGV: buyer, session
// Frees a slot only while session still owns it.
var releaseBuyerScript = redis.NewScript(`
if redis.call('HGET', KEYS[1], ARGV[1]) == ARGV[2] then
  return redis.call('HDEL', KEYS[1], ARGV[1])
end
return 0
`)

// KEYS: record, expiry, buyers
// ARGV: session, buyer, unit, expires_at, created_at, status
// Returns 0 when the buyer's slot belongs to another session. A slot claimed
// by this session, or a free one, is taken.
var createReservationScript = redis.NewScript(`
local owner = redis.call('HGET', KEYS[3], ARGV[2])
if owner and owner ~= ARGV[1] then
  return 0
end
redis.call('HSET', KEYS[1], 'session', ARGV[1], 'buyer', ARGV[2], 'unit', ARGV[3],
  'expires_at', ARGV[4], 'created_at', ARGV[5], 'status', ARGV[6])
redis.call('ZADD', KEYS[2], ARGV[4], ARGV[1])
redis.call('HSET', KEYS[3], ARGV[2], ARGV[1])
return 1
`)

// KEYS: record
// ARGV: to, from...
// Returns {code, field, value, ...}; code 1 moved, 0 status not in from, -1 missing.
var transitionScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return {-1}
end
local status = redis.call('HGET', KEYS[1], 'status')
local code = 0
for i = 2, #ARGV do
  if status == ARGV[i] then
    redis.call('HSET', KEYS[1], 'status', ARGV[1])
    code = 1
    break
  end
end
local out = redis.call('HGETALL', KEYS[1])
table.insert(out, 1, code)
return out
`)

// KEYS: record, expiry, buyers, holders, sold, purchasers
// ARGV: session
// Removes a held or paying reservation, marks its unit sold and its buyer as a
// purchaser. Returns the record fields, or an empty list when nothing was
// converted.
var convertScript = redis.NewScript(`
local status = redis.call('HGET', KEYS[1], 'status')
if status ~= 'held' and status ~= 'paying' then
  return {}
end
local fields = redis.call('HGETALL', KEYS[1])
local buyer = redis.call('HGET', KEYS[1], 'buyer')
local unit = redis.call('HGET', KEYS[1], 'unit')
redis.call('DEL', KEYS[1])
redis.call('ZREM', KEYS[2], ARGV[1])
if redis.call('HGET', KEYS[3], buyer) == ARGV[1] then
  redis.call('HDEL', KEYS[3], buyer)
end
if redis.call('HGET', KEYS[4], unit) == ARGV[1] then
  redis.call('HDEL', KEYS[4], unit)
end
redis.call('SADD', KEYS[5], unit)
redis.call('SADD', KEYS[6], buyer)
return fields
`)

// KEYS: record, expiry, buyers
// ARGV: session
var deleteReservationScript = redis.NewScript(`
local buyer = redis.call('HGET', KEYS[1], 'buyer')
redis.call('DEL', KEYS[1])
redis.call('ZREM', KEYS[2], ARGV[1])
if buyer and redis.call('HGET', KEYS[3], buyer) == ARGV[1] then
  redis.call('HDEL', KEYS[3], buyer)
end
return 1
`)

// KEYS: expiry, then every key of the resource
// Returns -1 while reservations are still live, else the number of keys removed.
var archiveScript = redis.NewScript(`
if redis.call('ZCARD', KEYS[1]) > 0 then
  return -1
end
local n = 0
for i = 2, #KEYS do
  n = n + redis.call('DEL', KEYS[i])
end
return n
`)
